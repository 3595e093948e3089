package tables

import (
	"encoding/json"
	"fmt"

	"arkdata/feature/gamedata/models"
)

// SkillRecord is one decoded skill_table entry. Name and description are
// taken from the first level; the source repeats them per level.
type SkillRecord struct {
	ID          string
	Name        string
	Description *string
	Levels      []models.SkillLevel
}

type rawSkill struct {
	SkillID string `json:"skillId"`
	Levels  []struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Duration    float64 `json:"duration"`
		SpData      struct {
			SpType        json.RawMessage `json:"spType"`
			SpCost        flexInt         `json:"spCost"`
			InitSp        flexInt         `json:"initSp"`
			MaxChargeTime flexInt         `json:"maxChargeTime"`
		} `json:"spData"`
	} `json:"levels"`
}

// DecodeSkillTable decodes skill_table.json into records keyed by skill id.
// A skill with no levels is malformed: there is nothing to name it by and
// nothing an operator could use.
func DecodeSkillTable(data []byte) (map[string]SkillRecord, error) {
	var raw map[string]rawSkill
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", NameSkill, err)
	}

	out := make(map[string]SkillRecord, len(raw))
	for id, rs := range raw {
		if len(rs.Levels) == 0 {
			return nil, malformed(NameSkill, id, "no levels")
		}
		rec := SkillRecord{ID: id}
		for _, lvl := range rs.Levels {
			name := lvl.Name
			desc := lvl.Description
			rec.Levels = append(rec.Levels, models.SkillLevel{
				Name:          name,
				Description:   dashToNil(desc),
				SPCost:        int(lvl.SpData.SpCost),
				InitialSP:     int(lvl.SpData.InitSp),
				MaxChargeTime: int(lvl.SpData.MaxChargeTime),
				Duration:      lvl.Duration,
			})
		}
		rec.Name = rec.Levels[0].Name
		rec.Description = rec.Levels[0].Description
		if rec.Name == "" {
			return nil, malformed(NameSkill, id, "missing name")
		}
		out[id] = rec
	}
	return out, nil
}
