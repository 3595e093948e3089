package tables

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"arkdata/feature/gamedata/models"
)

func TestDecodeCharacterTable(t *testing.T) {
	t.Run("decodes a full record", func(t *testing.T) {
		data := []byte(`{
			"char_285_medic2": {
				"name": "Lancet-2",
				"nationId": "rhodes",
				"groupId": null,
				"teamId": null,
				"displayNumber": "BP01",
				"appellation": "Lancet-2",
				"position": "RANGED",
				"tagList": ["Healing"],
				"rarity": 0,
				"profession": "MEDIC",
				"subProfessionId": "physician",
				"isNotObtainable": false,
				"skills": []
			}
		}`)

		chars, err := DecodeCharacterTable(data)
		assert.NoError(t, err)
		assert.Len(t, chars, 1)

		rec := chars["char_285_medic2"]
		assert.Equal(t, "char_285_medic2", rec.ID)
		assert.Equal(t, "Lancet-2", rec.Name)
		assert.Equal(t, "rhodes", *rec.NationID)
		assert.Nil(t, rec.GroupID)
		assert.Equal(t, models.PositionRanged, rec.Position)
		assert.Equal(t, []string{"Healing"}, rec.RecruitmentTags)
		assert.Equal(t, models.Rarity(1), rec.Rarity)
		assert.True(t, rec.Skills == nil)
	})

	t.Run("accepts TIER rarity and PHASE strings", func(t *testing.T) {
		data := []byte(`{
			"char_003_kalts": {
				"name": "Kal'tsit",
				"position": "MELEE",
				"rarity": "TIER_6",
				"profession": "MEDIC",
				"subProfessionId": "physician",
				"skills": [
					{"skillId": "skchr_kalts_1", "unlockCond": {"phase": "PHASE_0", "level": 1}},
					{"skillId": null, "unlockCond": {"phase": 0, "level": 1}},
					{"skillId": "skchr_kalts_3", "unlockCond": {"phase": 2, "level": "1"}}
				]
			}
		}`)

		chars, err := DecodeCharacterTable(data)
		assert.NoError(t, err)

		rec := chars["char_003_kalts"]
		assert.Equal(t, models.Rarity(6), rec.Rarity)
		assert.Equal(t, []SkillRef{
			{SkillID: "skchr_kalts_1", Phase: 0, Level: 1},
			{SkillID: "skchr_kalts_3", Phase: 2, Level: 1},
		}, rec.Skills)
	})

	t.Run("rejects a nameless record", func(t *testing.T) {
		data := []byte(`{"char_000": {"position": "MELEE", "rarity": 0}}`)

		_, err := DecodeCharacterTable(data)
		assert.Error(t, err)

		var mr *MalformedRecordError
		assert.True(t, errors.As(err, &mr))
		assert.Equal(t, "char_000", mr.ID)
	})
}

func TestDecodeSkillTable(t *testing.T) {
	t.Run("names the skill after its first level", func(t *testing.T) {
		data := []byte(`{
			"skcom_heal_up[1]": {
				"skillId": "skcom_heal_up[1]",
				"levels": [
					{"name": "Healing Boost", "description": "Restores HP", "duration": 30.0,
					 "spData": {"spType": 1, "spCost": "30", "initSp": 10, "maxChargeTime": 1}},
					{"name": "Healing Boost", "description": "-", "duration": 30.0,
					 "spData": {"spType": 1, "spCost": 28, "initSp": 10, "maxChargeTime": 1}}
				]
			}
		}`)

		skills, err := DecodeSkillTable(data)
		assert.NoError(t, err)

		rec := skills["skcom_heal_up[1]"]
		assert.Equal(t, "Healing Boost", rec.Name)
		assert.Equal(t, "Restores HP", *rec.Description)
		assert.Len(t, rec.Levels, 2)
		assert.Equal(t, 30, rec.Levels[0].SPCost)
		assert.Equal(t, 10, rec.Levels[0].InitialSP)
		assert.Nil(t, rec.Levels[1].Description)
	})

	t.Run("rejects a skill without levels", func(t *testing.T) {
		data := []byte(`{"sk_empty": {"skillId": "sk_empty", "levels": []}}`)

		_, err := DecodeSkillTable(data)
		var mr *MalformedRecordError
		assert.True(t, errors.As(err, &mr))
		assert.Equal(t, NameSkill, mr.Table)
	})
}

func TestDecodeBuildingData(t *testing.T) {
	data := []byte(`{
		"rooms": {
			"TRADING": {
				"id": "TRADING", "name": "Trading Post", "description": "Sells things",
				"maxCount": 5,
				"phases": [
					{"unlockCondId": "unlock_1", "maxStationedNum": 3, "manpowerCost": 200, "electricPower": -10}
				]
			}
		},
		"chars": {
			"char_102_texas": {
				"charId": "char_102_texas",
				"buffChar": [
					{"buffData": [{"buffId": "trade_ord_spd&cost[000]", "cond": {"phase": 1, "level": 1}}]},
					{"buffData": [{"buffId": "trade_ord_spd[000]", "cond": {"phase": 0, "level": 1}}]}
				]
			}
		},
		"buffs": {
			"trade_ord_spd[000]": {
				"buffId": "trade_ord_spd[000]", "buffName": "Standardization",
				"description": "Order efficiency +15%", "roomType": "TRADING",
				"buffCategory": "FUNCTION", "sortId": 1
			}
		}
	}`)

	bd, err := DecodeBuildingData(data)
	assert.NoError(t, err)

	room := bd.Rooms[models.RoomTradingPost]
	assert.Equal(t, "Trading Post", room.Name)
	assert.Equal(t, 5, *room.MaxCount)
	assert.Equal(t, -10, room.Phases[0].Power)
	assert.Equal(t, 3, room.Phases[0].OperatorCapacity)

	buff := bd.Skills["trade_ord_spd[000]"]
	assert.Equal(t, "Standardization", buff.Name)
	assert.Equal(t, models.RoomTradingPost, buff.RoomType)

	// Unlocks come back sorted by gate, not source order.
	refs := bd.Unlocks["char_102_texas"]
	assert.Equal(t, []BaseSkillRef{
		{BuffID: "trade_ord_spd[000]", Phase: 0, Level: 1},
		{BuffID: "trade_ord_spd&cost[000]", Phase: 1, Level: 1},
	}, refs)
}

func TestDecodeItemTable(t *testing.T) {
	data := []byte(`{
		"items": {
			"3301": {
				"itemId": "3301", "name": "Skill Summary - 1", "description": "A booklet",
				"rarity": 1, "iconId": "MTL_SKILL1", "usage": "Upgrade material",
				"obtainApproach": "Store", "classifyType": "MATERIAL", "itemType": "MATERIAL"
			},
			"food_bad": {
				"itemId": "food_bad", "name": "Vegetable Radish Tin", "description": "-",
				"rarity": "TIER_1", "iconId": "food", "usage": null,
				"obtainApproach": null, "classifyType": "CONSUME", "itemType": "ACTIVITY_ITEM"
			}
		}
	}`)

	items, err := DecodeItemTable(data)
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	mat := items["3301"]
	assert.Equal(t, models.ItemClassMaterial, mat.Class)
	assert.Equal(t, models.Rarity(2), mat.Rarity)
	assert.Equal(t, []string{"Store"}, mat.Obtain)

	tin := items["food_bad"]
	assert.Equal(t, "Vegetable Radish Tin", tin.Name)
	assert.Nil(t, tin.Description)
	assert.Equal(t, models.ItemClassConsumable, tin.Class)
	assert.Equal(t, models.Rarity(1), tin.Rarity)
}

func TestDecodeHandbookUnlock(t *testing.T) {
	tests := []struct {
		name       string
		unlockType string
		param      string
		want       models.HandbookUnlock
	}{
		{"empty param is always visible", `1`, "", models.HandbookUnlock{Kind: models.UnlockAlways}},
		{"integer param is a trust gate", `1`, "50", models.HandbookUnlock{Kind: models.UnlockTrust, Trust: 50}},
		{"phase;level is a promotion gate", `2`, "2;1", models.HandbookUnlock{
			Kind:      models.UnlockPromotion,
			Promotion: &models.PromotionRequirement{Phase: 2, Level: 1},
		}},
		{"type 6 names an operator", `6`, "char_1001_amiya2", models.HandbookUnlock{
			Kind: models.UnlockOperator, OperatorID: "char_1001_amiya2",
		}},
		{"string DIRECT names an operator", `"DIRECT"`, "char_1001_amiya2", models.HandbookUnlock{
			Kind: models.UnlockOperator, OperatorID: "char_1001_amiya2",
		}},
		{"unmatched text falls back to always", `1`, "something", models.HandbookUnlock{Kind: models.UnlockAlways}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeHandbookUnlock([]byte(tt.unlockType), tt.param)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeHandbookTable(t *testing.T) {
	data := []byte(`{
		"handbookDict": {
			"char_002_amiya": {
				"charID": "char_002_amiya",
				"drawName": "Wei Lai",
				"storyTextAudio": [
					{"storyTitle": "Basic Info", "stories": [
						{"storyText": "Code Name: Amiya", "unLockType": 0, "unLockParam": ""}
					]},
					{"storyTitle": "Profile", "stories": [
						{"storyText": "Leader of Rhodes Island", "unLockType": 1, "unLockParam": "50"}
					]},
					{"storyTitle": "Archives", "stories": []}
				]
			}
		}
	}`)

	entries, err := DecodeHandbookTable(data)
	assert.NoError(t, err)

	entry := entries["char_002_amiya"]
	assert.Equal(t, "Wei Lai", *entry.Illustrator)
	assert.Len(t, entry.Sections, 2)
	assert.Equal(t, "Basic Info", entry.Sections[0].Title)
	assert.Equal(t, models.UnlockAlways, entry.Sections[0].Unlock.Kind)
	assert.Equal(t, models.UnlockTrust, entry.Sections[1].Unlock.Kind)
	assert.Equal(t, 50, entry.Sections[1].Unlock.Trust)
}

func TestDecodeCharacterMetaTable(t *testing.T) {
	data := []byte(`{
		"spCharGroups": {
			"char_002_amiya": ["char_002_amiya", "char_1001_amiya2", "char_1037_amiya3"],
			"char_010_kroos": ["char_010_kroos", "char_1021_kroos2"],
			"char_285_medic2": ["char_285_medic2"]
		}
	}`)

	pairs, err := DecodeCharacterMetaTable(data)
	assert.NoError(t, err)
	assert.Equal(t, []models.AlterPair{
		{First: "char_002_amiya", Second: "char_1001_amiya2"},
		{First: "char_002_amiya", Second: "char_1037_amiya3"},
		{First: "char_010_kroos", Second: "char_1021_kroos2"},
		{First: "char_1001_amiya2", Second: "char_1037_amiya3"},
	}, pairs)
}

func TestMalformedRecordError(t *testing.T) {
	err := malformed(NameCharacter, "char_000", "missing name")
	assert.EqualError(t, err, `malformed record "char_000" in character_table: missing name`)
}
