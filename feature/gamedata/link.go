package gamedata

import (
	"sort"

	"arkdata/feature/gamedata/models"
	"arkdata/feature/gamedata/tables"
)

// linkInputs bundles the decoded tables the linker resolves against each
// other. Characters are expected to be pre-filtered to playable records.
type linkInputs struct {
	Characters map[string]tables.CharacterRecord
	Skills     map[string]tables.SkillRecord
	Building   *tables.BuildingData
	Handbook   map[string]*models.HandbookEntry
	Alters     []models.AlterPair
}

// link resolves every cross-table reference and produces the final
// operator set keyed by id. References into missing records are skipped
// rather than failed: regional trees routinely lag each other by a few
// skills or handbook entries.
func link(in linkInputs) map[string]*models.Operator {
	// One shared Skill per referenced id, built lazily.
	resolved := make(map[string]*models.Skill)
	skillFor := func(id string) *models.Skill {
		if s, ok := resolved[id]; ok {
			return s
		}
		rec, ok := in.Skills[id]
		if !ok {
			resolved[id] = nil
			return nil
		}
		s := &models.Skill{
			ID:          rec.ID,
			Name:        rec.Name,
			Description: rec.Description,
			Levels:      rec.Levels,
		}
		resolved[id] = s
		return s
	}

	// Group alternates per member id up front.
	alternates := make(map[string][]string)
	for _, p := range in.Alters {
		alternates[p.First] = append(alternates[p.First], p.Second)
		alternates[p.Second] = append(alternates[p.Second], p.First)
	}
	for id := range alternates {
		sort.Strings(alternates[id])
	}

	out := make(map[string]*models.Operator, len(in.Characters))
	for id, rec := range in.Characters {
		op := &models.Operator{
			ID:              id,
			Name:            rec.Name,
			NationID:        rec.NationID,
			GroupID:         rec.GroupID,
			TeamID:          rec.TeamID,
			Appellation:     rec.Appellation,
			Position:        rec.Position,
			RecruitmentTags: rec.RecruitmentTags,
			Rarity:          rec.Rarity,
			Profession:      models.Profession(rec.Profession),
			SubProfession:   rec.SubProfession,
			Skills:          make(map[string]*models.Skill),
		}
		if rec.DisplayNumber != nil {
			op.DisplayNumber = *rec.DisplayNumber
		}

		// Deployable skills keep the declared slot order; slots whose skill
		// the skill table does not carry are dropped.
		for _, ref := range rec.Skills {
			s := skillFor(ref.SkillID)
			if s == nil {
				continue
			}
			op.Skills[s.ID] = s
			op.SkillOrder = append(op.SkillOrder, models.SkillSlot{
				SkillID: s.ID,
				Unlock:  models.PromotionRequirement{Phase: ref.Phase, Level: ref.Level},
			})
		}

		if in.Building != nil {
			for _, ref := range in.Building.Unlocks[id] {
				buff, ok := in.Building.Skills[ref.BuffID]
				if !ok {
					continue
				}
				op.BaseSkills = append(op.BaseSkills, models.BaseSkillUnlock{
					SkillID:  buff.ID,
					Name:     buff.Name,
					RoomType: buff.RoomType,
					Unlock:   models.PromotionRequirement{Phase: ref.Phase, Level: ref.Level},
				})
			}
			sort.SliceStable(op.BaseSkills, func(i, j int) bool {
				a, b := op.BaseSkills[i].Unlock, op.BaseSkills[j].Unlock
				if a.Phase != b.Phase {
					return a.Phase < b.Phase
				}
				return a.Level < b.Level
			})
		}

		op.Handbook = in.Handbook[id]
		op.Alternates = alternates[id]
		out[id] = op
	}
	return out
}
