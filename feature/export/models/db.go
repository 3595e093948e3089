package models

import (
	gd "arkdata/feature/gamedata/models"
)

// OperatorRow represents the 'operators' table.
type OperatorRow struct {
	ID            string  `gorm:"column:id;primaryKey"`
	Name          string  `gorm:"column:name"`
	NationID      *string `gorm:"column:nation_id"`
	GroupID       *string `gorm:"column:group_id"`
	TeamID        *string `gorm:"column:team_id"`
	DisplayNumber string  `gorm:"column:display_number"`
	Appellation   *string `gorm:"column:appellation"`
	Position      string  `gorm:"column:position"`
	Rarity        uint8   `gorm:"column:rarity"`
	Profession    string  `gorm:"column:profession"`
	SubProfession string  `gorm:"column:sub_profession"`
}

// TableName overrides the table name.
func (OperatorRow) TableName() string {
	return "operators"
}

// FromOperator flattens a linked operator into its row form.
func FromOperator(op *gd.Operator) OperatorRow {
	return OperatorRow{
		ID:            op.ID,
		Name:          op.Name,
		NationID:      op.NationID,
		GroupID:       op.GroupID,
		TeamID:        op.TeamID,
		DisplayNumber: op.DisplayNumber,
		Appellation:   op.Appellation,
		Position:      string(op.Position),
		Rarity:        uint8(op.Rarity),
		Profession:    string(op.Profession),
		SubProfession: op.SubProfession,
	}
}

// OperatorSkillRow represents the 'operator_skills' table, one row per
// declared skill slot.
type OperatorSkillRow struct {
	OperatorID  string `gorm:"column:operator_id;primaryKey"`
	SkillID     string `gorm:"column:skill_id;primaryKey"`
	Slot        int    `gorm:"column:slot"`
	Name        string `gorm:"column:name"`
	UnlockPhase int    `gorm:"column:unlock_phase"`
	UnlockLevel int    `gorm:"column:unlock_level"`
}

// TableName overrides the table name.
func (OperatorSkillRow) TableName() string {
	return "operator_skills"
}

// FromOperatorSkills flattens an operator's skill slots, preserving the
// declared order in the Slot column.
func FromOperatorSkills(op *gd.Operator) []OperatorSkillRow {
	rows := make([]OperatorSkillRow, 0, len(op.SkillOrder))
	for i, slot := range op.SkillOrder {
		rows = append(rows, OperatorSkillRow{
			OperatorID:  op.ID,
			SkillID:     slot.SkillID,
			Slot:        i,
			Name:        op.Skills[slot.SkillID].Name,
			UnlockPhase: slot.Unlock.Phase,
			UnlockLevel: slot.Unlock.Level,
		})
	}
	return rows
}

// ItemRow represents the 'items' table.
type ItemRow struct {
	ID          string  `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name"`
	Description *string `gorm:"column:description"`
	Rarity      uint8   `gorm:"column:rarity"`
	IconID      string  `gorm:"column:icon_id"`
	Usage       *string `gorm:"column:usage"`
	Class       string  `gorm:"column:class"`
	Type        string  `gorm:"column:item_type"`
}

// TableName overrides the table name.
func (ItemRow) TableName() string {
	return "items"
}

// FromItem flattens an item into its row form.
func FromItem(item *gd.Item) ItemRow {
	return ItemRow{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Rarity:      uint8(item.Rarity),
		IconID:      item.IconID,
		Usage:       item.Usage,
		Class:       string(item.Class),
		Type:        item.Type,
	}
}
