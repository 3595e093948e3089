package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	gd "arkdata/feature/gamedata/models"
)

func TestFromOperatorSkills(t *testing.T) {
	first := &gd.Skill{ID: "sk_1", Name: "First"}
	second := &gd.Skill{ID: "sk_2", Name: "Second"}
	op := &gd.Operator{
		ID:     "char_a",
		Skills: map[string]*gd.Skill{"sk_1": first, "sk_2": second},
		SkillOrder: []gd.SkillSlot{
			{SkillID: "sk_2", Unlock: gd.PromotionRequirement{Phase: 1, Level: 1}},
			{SkillID: "sk_1", Unlock: gd.PromotionRequirement{Phase: 0, Level: 1}},
		},
	}

	rows := FromOperatorSkills(op)
	assert.Equal(t, []OperatorSkillRow{
		{OperatorID: "char_a", SkillID: "sk_2", Slot: 0, Name: "Second", UnlockPhase: 1, UnlockLevel: 1},
		{OperatorID: "char_a", SkillID: "sk_1", Slot: 1, Name: "First", UnlockPhase: 0, UnlockLevel: 1},
	}, rows)
}
