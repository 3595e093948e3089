package export

import (
	"context"
	"fmt"

	"arkdata/feature/export/models"
	"arkdata/feature/gamedata"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const insertBatchSize = 500

// Summary reports how many rows an export wrote.
type Summary struct {
	Operators int `json:"operators"`
	Skills    int `json:"skills"`
	Items     int `json:"items"`
}

// Service writes a loaded snapshot into the relational schema. Exports are
// one-way: the database mirrors the snapshot and is fully rewritten on
// every run.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new export service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Export replaces the exported tables with the given snapshot's contents
// in a single transaction.
func (s *Service) Export(ctx context.Context, gd *gamedata.GameData) (*Summary, error) {
	ops := gd.Operators()
	items := gd.Items()

	opRows := make([]models.OperatorRow, 0, len(ops))
	var skillRows []models.OperatorSkillRow
	for _, op := range ops {
		opRows = append(opRows, models.FromOperator(op))
		skillRows = append(skillRows, models.FromOperatorSkills(op)...)
	}
	itemRows := make([]models.ItemRow, 0, len(items))
	for _, item := range items {
		itemRows = append(itemRows, models.FromItem(item))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"operator_skills", "operators", "items"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		if len(opRows) > 0 {
			if err := tx.CreateInBatches(opRows, insertBatchSize).Error; err != nil {
				return fmt.Errorf("insert operators: %w", err)
			}
		}
		if len(skillRows) > 0 {
			if err := tx.CreateInBatches(skillRows, insertBatchSize).Error; err != nil {
				return fmt.Errorf("insert operator skills: %w", err)
			}
		}
		if len(itemRows) > 0 {
			if err := tx.CreateInBatches(itemRows, insertBatchSize).Error; err != nil {
				return fmt.Errorf("insert items: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Operators: len(opRows),
		Skills:    len(skillRows),
		Items:     len(itemRows),
	}
	s.logger.Info("snapshot exported",
		zap.Int("operators", summary.Operators),
		zap.Int("skills", summary.Skills),
		zap.Int("items", summary.Items),
	)
	return summary, nil
}
