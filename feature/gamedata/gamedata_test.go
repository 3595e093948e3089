package gamedata_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"arkdata/core/source"
	"arkdata/feature/gamedata"
	"arkdata/feature/gamedata/models"
)

const fixtureRoot = "testdata/gamedata"

func loadFixture(t *testing.T) *gamedata.GameData {
	t.Helper()
	gd, err := gamedata.FromLocal(context.Background(), fixtureRoot)
	assert.NoError(t, err)
	return gd
}

func TestFromLocal(t *testing.T) {
	gd := loadFixture(t)

	t.Run("filters non-playable units", func(t *testing.T) {
		ops := gd.Operators()
		assert.Len(t, ops, 3)
		assert.Nil(t, gd.Operator("token_10000_silent_healrb"))
		assert.Nil(t, gd.Operator("trap_001_crate"))
		assert.Nil(t, gd.Operator("char_512_aprot"))
	})

	t.Run("operators come back in id order", func(t *testing.T) {
		var ids []string
		for _, op := range gd.Operators() {
			ids = append(ids, op.ID)
		}
		assert.Equal(t, []string{"char_002_amiya", "char_010_kroos", "char_1021_kroos2"}, ids)
	})

	t.Run("links a full operator", func(t *testing.T) {
		kroos := gd.Operator("char_010_kroos")
		assert.NotNil(t, kroos)
		assert.Equal(t, "Kroos", kroos.Name)
		assert.Equal(t, "R11", kroos.DisplayNumber)
		assert.Equal(t, models.Rarity(3), kroos.Rarity)
		assert.Equal(t, models.ProfessionSniper, kroos.Profession)

		// Declared slot order survives, TIER/PHASE spellings included.
		assert.Equal(t, []string{"skcom_magicresist_up[1]", "skchr_kroos_1"}, []string{
			kroos.SkillOrder[0].SkillID, kroos.SkillOrder[1].SkillID,
		})
		assert.Len(t, kroos.Skills["skchr_kroos_1"].Levels, 2)

		// Base skills ordered by promotion gate; the dangling buff reference
		// is dropped.
		assert.Len(t, kroos.BaseSkills, 2)
		assert.Equal(t, "skill_dorm_rest[000]", kroos.BaseSkills[0].SkillID)
		assert.Equal(t, models.PromotionRequirement{Phase: 0, Level: 1}, kroos.BaseSkills[0].Unlock)
		assert.Equal(t, "manu_prod_spd[001]", kroos.BaseSkills[1].SkillID)

		assert.NotNil(t, kroos.Handbook)
		assert.Equal(t, "Mitsuki Yuuya", *kroos.Handbook.Illustrator)
		assert.Len(t, kroos.Handbook.Sections, 3)
		assert.Equal(t, models.UnlockPromotion, kroos.Handbook.Sections[2].Unlock.Kind)

		assert.Equal(t, []string{"char_1021_kroos2"}, kroos.Alternates)
	})

	t.Run("tolerates references into missing skills", func(t *testing.T) {
		alt := gd.Operator("char_1021_kroos2")
		assert.NotNil(t, alt)
		assert.Len(t, alt.SkillOrder, 1)
		assert.Equal(t, "skchr_kroos2_1", alt.SkillOrder[0].SkillID)
		assert.Nil(t, alt.Handbook)
	})

	t.Run("loads items and rooms", func(t *testing.T) {
		tin := gd.Item("food_5")
		assert.NotNil(t, tin)
		assert.Equal(t, "Vegetable Radish Tin", tin.Name)
		assert.Nil(t, tin.Description)
		assert.Equal(t, models.ItemClassConsumable, tin.Class)
		assert.Equal(t, models.Rarity(2), tin.Rarity)

		var ids []string
		for _, item := range gd.Items() {
			ids = append(ids, item.ID)
		}
		assert.Equal(t, []string{"3301", "4001", "food_5"}, ids)

		room, ok := gd.Room(models.RoomTradingPost)
		assert.True(t, ok)
		assert.Equal(t, "Trading Post", room.Name)
		assert.Len(t, room.Phases, 2)
		_, ok = gd.Room(models.RoomWorkshop)
		assert.False(t, ok)
	})
}

func TestFindByName(t *testing.T) {
	gd := loadFixture(t)

	t.Run("case-insensitive operator lookup", func(t *testing.T) {
		op := gd.FindOperator("kroos")
		assert.NotNil(t, op)
		assert.Equal(t, "char_010_kroos", op.ID)

		assert.Nil(t, gd.FindOperator("nobody"))
	})

	t.Run("case-insensitive item lookup", func(t *testing.T) {
		item := gd.FindItem("vegetable radish tin")
		assert.NotNil(t, item)
		assert.Equal(t, "food_5", item.ID)

		assert.Nil(t, gd.FindItem("golden carrot"))
	})
}

func TestLoadIsDeterministic(t *testing.T) {
	first := loadFixture(t)
	second := loadFixture(t)

	assert.Equal(t, first.Operators(), second.Operators())
	assert.Equal(t, first.Items(), second.Items())
}

func TestFromLocalMissingTable(t *testing.T) {
	// Copy the fixture minus the handbook table.
	root := t.TempDir()
	excel := filepath.Join(root, "excel")
	assert.NoError(t, os.MkdirAll(excel, 0o755))
	for _, table := range source.Tables {
		if table == source.TableHandbook {
			continue
		}
		data, err := os.ReadFile(filepath.Join(fixtureRoot, table.Path()))
		assert.NoError(t, err)
		assert.NoError(t, os.WriteFile(filepath.Join(root, table.Path()), data, 0o644))
	}

	_, err := gamedata.FromLocal(context.Background(), root)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, source.ErrNotFound))
}

func TestAlterOf(t *testing.T) {
	gd := loadFixture(t)

	assert.Equal(t, []string{"char_1021_kroos2"}, gd.AlterOf("char_010_kroos"))
	assert.Equal(t, []string{"char_010_kroos"}, gd.AlterOf("char_1021_kroos2"))
	assert.Empty(t, gd.AlterOf("char_002_amiya"))
}
