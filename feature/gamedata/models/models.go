package models

// Rarity is the star rating of an operator or item, ranging 1 to 6.
type Rarity uint8

// Position indicates whether an operator is primarily melee or ranged.
type Position string

const (
	PositionMelee  Position = "MELEE"
	PositionRanged Position = "RANGED"
)

// Profession is an operator's primary class.
type Profession string

const (
	ProfessionVanguard   Profession = "VANGUARD"
	ProfessionGuard      Profession = "GUARD"
	ProfessionTank       Profession = "TANK"
	ProfessionSniper     Profession = "SNIPER"
	ProfessionCaster     Profession = "CASTER"
	ProfessionMedic      Profession = "MEDIC"
	ProfessionSupport    Profession = "SUPPORT"
	ProfessionSpecialist Profession = "SPECIALIST"
)

// PromotionRequirement gates content behind an elite phase and level.
type PromotionRequirement struct {
	Phase int `json:"phase"`
	Level int `json:"level"`
}

// Before reports whether r unlocks no later than other in the
// (phase, level) ordering used for base skills.
func (r PromotionRequirement) Before(other PromotionRequirement) bool {
	if r.Phase != other.Phase {
		return r.Phase < other.Phase
	}
	return r.Level <= other.Level
}

// Operator is a playable character with all cross-references resolved.
//
// Operators are constructed once during the load/link pass and must not be
// mutated afterwards; Skills values are shared with other operators that
// unlock the same skill.
type Operator struct {
	// ID is the internal identifier, stable across regions.
	ID string `json:"id"`
	// Name is the display name, region dependent.
	Name string `json:"name"`
	// NationID is the nation the operator belongs to, absent for some units.
	NationID *string `json:"nation_id,omitempty"`
	// GroupID is the sub-faction, absent for most units.
	GroupID *string `json:"group_id,omitempty"`
	// TeamID is the team, absent for most units.
	TeamID *string `json:"team_id,omitempty"`
	// DisplayNumber is the archive code shown in game (e.g. "R11" for Kroos).
	DisplayNumber string `json:"display_number"`
	// Appellation is an alternate latin-script name, absent on EN trees.
	Appellation *string `json:"appellation,omitempty"`
	Position    Position `json:"position"`
	// RecruitmentTags are region dependent tag names.
	RecruitmentTags []string   `json:"recruitment_tags,omitempty"`
	Rarity          Rarity     `json:"rarity"`
	Profession      Profession `json:"profession"`
	SubProfession   string     `json:"sub_profession"`

	// Skills maps skill id to the resolved shared Skill. Only skills that
	// exist in the skill table appear here.
	Skills map[string]*Skill `json:"skills"`
	// SkillOrder preserves the declared skill-slot order of the source
	// record. Every entry has a matching key in Skills.
	SkillOrder []SkillSlot `json:"skill_order"`
	// BaseSkills are the RIIC base skill unlocks granted by this operator,
	// ordered by (phase, level) ascending.
	BaseSkills []BaseSkillUnlock `json:"base_skills,omitempty"`
	// Handbook is the operator's archive file, absent when the handbook
	// table has no entry for this operator.
	Handbook *HandbookEntry `json:"handbook,omitempty"`
	// Alternates lists the ids of alternate playable forms linked to this
	// operator, in ascending id order.
	Alternates []string `json:"alternates,omitempty"`
}

// SkillSlot is one entry of an operator's declared skill sequence.
type SkillSlot struct {
	SkillID string `json:"skill_id"`
	// Unlock is the promotion gate for this slot.
	Unlock PromotionRequirement `json:"unlock"`
}

// Skill is a deployable skill owned by the skill table and shared by every
// operator that unlocks it.
type Skill struct {
	ID string `json:"id"`
	// Name is taken from the skill's level entries.
	Name string `json:"name"`
	// Description is the template of the first level. Blank `{placeholder}`
	// markers are left unresolved.
	Description *string `json:"description,omitempty"`
	// Levels holds the ordered upgrade ranks.
	Levels []SkillLevel `json:"levels"`
}

// SkillLevel is one upgradeable rank of a skill.
type SkillLevel struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	SPCost      int     `json:"sp_cost"`
	InitialSP   int     `json:"initial_sp"`
	// MaxChargeTime is the number of charges the skill can hold.
	MaxChargeTime int `json:"max_charge_time"`
	// Duration is the active duration in seconds; negative values mark
	// passive or toggled skills.
	Duration float64 `json:"duration"`
}

// RoomType is an RIIC base room categorization (CONTROL, TRADING, ...).
type RoomType string

const (
	RoomControlCenter RoomType = "CONTROL"
	RoomPowerPlant    RoomType = "POWER"
	RoomFactory       RoomType = "MANUFACTURE"
	RoomTradingPost   RoomType = "TRADING"
	RoomDormitory     RoomType = "DORMITORY"
	RoomWorkshop      RoomType = "WORKSHOP"
	RoomOffice        RoomType = "HIRE"
	RoomTrainingRoom  RoomType = "TRAINING"
	RoomReception     RoomType = "MEETING"
	RoomElevator      RoomType = "ELEVATOR"
	RoomCorridor      RoomType = "CORRIDOR"
)

// BuildingSkill is a base skill record owned by the building table.
type BuildingSkill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Description is the effect text for this skill, absent for a few
	// placeholder records.
	Description *string  `json:"description,omitempty"`
	RoomType    RoomType `json:"room_type"`
	Category    string   `json:"category"`
	SortID      int      `json:"sort_id"`
}

// BaseSkillUnlock attaches a building skill to the operator that grants it.
type BaseSkillUnlock struct {
	// SkillID references a BuildingSkill record.
	SkillID  string   `json:"skill_id"`
	Name     string   `json:"name"`
	RoomType RoomType `json:"room_type"`
	// Unlock is the promotion gate at which the operator grants the skill.
	Unlock PromotionRequirement `json:"unlock"`
}

// Room is an RIIC base room definition from the building table.
type Room struct {
	Type        RoomType `json:"type"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	// MaxCount is the build limit, absent for unlimited rooms.
	MaxCount *int `json:"max_count,omitempty"`
	// Phases holds the per-upgrade-level properties in level order.
	Phases []RoomPhase `json:"phases"`
}

// RoomPhase is one upgrade level of a room.
type RoomPhase struct {
	UnlockCondition string `json:"unlock_condition"`
	// Power consumed (negative) or produced (positive) at this level.
	Power            int `json:"power"`
	OperatorCapacity int `json:"operator_capacity"`
	ManpowerCost     int `json:"manpower_cost"`
}

// ItemClass is an item's coarse categorization.
type ItemClass string

const (
	ItemClassConsumable ItemClass = "CONSUMABLE"
	ItemClassBasic      ItemClass = "BASIC"
	ItemClassMaterial   ItemClass = "MATERIAL"
	ItemClassOther      ItemClass = "OTHER"
)

// Item is a standalone inventory item; items carry no references into
// other entities.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Description is flavor text, absent on some items.
	Description *string `json:"description,omitempty"`
	Rarity      Rarity  `json:"rarity"`
	IconID      string  `json:"icon_id"`
	// Usage describes what the item is for, absent on some items.
	Usage *string `json:"usage,omitempty"`
	// Obtain lists the ways the item can be acquired, possibly empty.
	Obtain []string  `json:"obtain,omitempty"`
	Class  ItemClass `json:"class"`
	Type   string    `json:"type"`
}

// HandbookEntry holds the archive file texts for one operator.
type HandbookEntry struct {
	// OperatorID matches the owning operator's id.
	OperatorID string `json:"operator_id"`
	// Illustrator is the credited artist, absent on some regional trees.
	Illustrator *string `json:"illustrator,omitempty"`
	// Sections are the story blocks in source order.
	Sections []HandbookSection `json:"sections"`
}

// HandbookSection is one story block with its unlock condition.
type HandbookSection struct {
	Title  string         `json:"title"`
	Text   string         `json:"text"`
	Unlock HandbookUnlock `json:"unlock"`
}

// HandbookUnlockKind enumerates the ways a handbook section unlocks.
type HandbookUnlockKind string

const (
	// UnlockAlways marks sections visible from the start.
	UnlockAlways HandbookUnlockKind = "always"
	// UnlockTrust gates a section behind a trust threshold.
	UnlockTrust HandbookUnlockKind = "trust"
	// UnlockPromotion gates a section behind an elite phase and level.
	UnlockPromotion HandbookUnlockKind = "promotion"
	// UnlockOperator gates a section behind owning another operator.
	UnlockOperator HandbookUnlockKind = "operator"
)

// HandbookUnlock is the decoded unlock condition of a handbook section.
// Only the field matching Kind is meaningful.
type HandbookUnlock struct {
	Kind       HandbookUnlockKind    `json:"kind"`
	Trust      int                   `json:"trust,omitempty"`
	Promotion  *PromotionRequirement `json:"promotion,omitempty"`
	OperatorID string                `json:"operator_id,omitempty"`
}

// AlterPair is an unordered pair of operator ids that are alternate forms
// of each other. First is always the lexicographically smaller id.
type AlterPair struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// NewAlterPair normalizes the pair ordering.
func NewAlterPair(a, b string) AlterPair {
	if b < a {
		a, b = b, a
	}
	return AlterPair{First: a, Second: b}
}

// Other returns the opposite member of the pair, or "" when id is not part
// of it.
func (p AlterPair) Other(id string) string {
	switch id {
	case p.First:
		return p.Second
	case p.Second:
		return p.First
	default:
		return ""
	}
}
