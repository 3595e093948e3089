package tables

import (
	"encoding/json"
	"fmt"
	"sort"

	"arkdata/feature/gamedata/models"
)

// SkillRef is a character's declared skill slot pointing at a skill id in
// the skill table, together with the promotion gate that unlocks it.
type SkillRef struct {
	SkillID string
	Phase   int
	Level   int
}

// CharacterRecord is one decoded character_table entry. It carries the raw
// upstream identity—including professions and ids that later turn out to be
// traps or tokens—so that filtering stays a separate step.
type CharacterRecord struct {
	ID              string
	Name            string
	NationID        *string
	GroupID         *string
	TeamID          *string
	DisplayNumber   *string
	Appellation     *string
	Position        models.Position
	RecruitmentTags []string
	Rarity          models.Rarity
	Profession      string
	SubProfession   string
	IsUnobtainable  bool
	Skills          []SkillRef
}

type rawCharacter struct {
	Name            string     `json:"name"`
	NationID        *string    `json:"nationId"`
	GroupID         *string    `json:"groupId"`
	TeamID          *string    `json:"teamId"`
	DisplayNumber   *string    `json:"displayNumber"`
	Appellation     *string    `json:"appellation"`
	Position        string     `json:"position"`
	TagList         stringList `json:"tagList"`
	Rarity          flexRarity `json:"rarity"`
	Profession      string     `json:"profession"`
	SubProfessionID string     `json:"subProfessionId"`
	IsNotObtainable bool       `json:"isNotObtainable"`
	Skills          []struct {
		SkillID    *string `json:"skillId"`
		UnlockCond struct {
			Phase flexPhase `json:"phase"`
			Level flexInt   `json:"level"`
		} `json:"unlockCond"`
	} `json:"skills"`
}

// DecodeCharacterTable decodes character_table.json into records keyed by
// character id. Records missing a name are rejected as malformed; skill
// slots with a blank skillId are dropped, preserving the declared order of
// the rest.
func DecodeCharacterTable(data []byte) (map[string]CharacterRecord, error) {
	var raw map[string]rawCharacter
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", NameCharacter, err)
	}

	out := make(map[string]CharacterRecord, len(raw))
	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		rc := raw[id]
		if rc.Name == "" {
			return nil, malformed(NameCharacter, id, "missing name")
		}
		rec := CharacterRecord{
			ID:              id,
			Name:            rc.Name,
			NationID:        blankToNil(rc.NationID),
			GroupID:         blankToNil(rc.GroupID),
			TeamID:          blankToNil(rc.TeamID),
			DisplayNumber:   blankToNil(rc.DisplayNumber),
			Appellation:     blankToNil(rc.Appellation),
			Position:        models.Position(rc.Position),
			RecruitmentTags: rc.TagList,
			Rarity:          models.Rarity(rc.Rarity),
			Profession:      rc.Profession,
			SubProfession:   rc.SubProfessionID,
			IsUnobtainable:  rc.IsNotObtainable,
		}
		for _, s := range rc.Skills {
			if s.SkillID == nil || *s.SkillID == "" {
				continue
			}
			rec.Skills = append(rec.Skills, SkillRef{
				SkillID: *s.SkillID,
				Phase:   int(s.UnlockCond.Phase),
				Level:   int(s.UnlockCond.Level),
			})
		}
		out[id] = rec
	}
	return out, nil
}
