package gamedata

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"arkdata/core/source"
	"arkdata/core/storage"
	"arkdata/feature/gamedata/models"
	"arkdata/feature/gamedata/tables"
)

// GameData is the fully loaded, cross-referenced content snapshot for one
// region. It is immutable after construction and safe for concurrent use.
type GameData struct {
	operators   map[string]*models.Operator
	operatorIDs []string
	items       map[string]*models.Item
	itemIDs     []string
	rooms       map[models.RoomType]models.Room
	baseSkills  map[string]*models.BuildingSkill
	alters      []models.AlterPair
}

// FromLocal loads a snapshot from a directory tree laid out like the
// upstream repository (root/excel/<table>.json).
func FromLocal(ctx context.Context, root string) (*GameData, error) {
	return New(ctx, source.NewLocal(root))
}

// FromRemote loads a snapshot from object storage, under
// <region>/gamedata/excel/ in the given bucket.
func FromRemote(ctx context.Context, client storage.Client, bucket string, region source.Region) (*GameData, error) {
	return New(ctx, source.NewRemote(client, bucket, region))
}

// New fetches all six tables from src in parallel, decodes them, filters
// out non-playable characters and links the rest into the final model.
func New(ctx context.Context, src source.Source) (*GameData, error) {
	raw := make(map[source.Table][]byte, len(source.Tables))
	g, gctx := errgroup.WithContext(ctx)
	results := make([][]byte, len(source.Tables))
	for i, table := range source.Tables {
		g.Go(func() error {
			data, err := src.FetchTable(gctx, table)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", table, err)
			}
			results[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for i, table := range source.Tables {
		raw[table] = results[i]
	}

	chars, err := tables.DecodeCharacterTable(raw[source.TableCharacter])
	if err != nil {
		return nil, err
	}
	skills, err := tables.DecodeSkillTable(raw[source.TableSkill])
	if err != nil {
		return nil, err
	}
	building, err := tables.DecodeBuildingData(raw[source.TableBuilding])
	if err != nil {
		return nil, err
	}
	items, err := tables.DecodeItemTable(raw[source.TableItem])
	if err != nil {
		return nil, err
	}
	handbook, err := tables.DecodeHandbookTable(raw[source.TableHandbook])
	if err != nil {
		return nil, err
	}
	alters, err := tables.DecodeCharacterMetaTable(raw[source.TableCharacterMeta])
	if err != nil {
		return nil, err
	}

	operators := link(linkInputs{
		Characters: filterPlayable(chars),
		Skills:     skills,
		Building:   building,
		Handbook:   handbook,
		Alters:     alters,
	})

	gd := &GameData{
		operators:  operators,
		items:      items,
		rooms:      building.Rooms,
		baseSkills: building.Skills,
		alters:     alters,
	}
	for id := range operators {
		gd.operatorIDs = append(gd.operatorIDs, id)
	}
	sort.Strings(gd.operatorIDs)
	for id := range items {
		gd.itemIDs = append(gd.itemIDs, id)
	}
	sort.Strings(gd.itemIDs)
	return gd, nil
}

// Operator returns the operator with the given id, or nil.
func (g *GameData) Operator(id string) *models.Operator {
	return g.operators[id]
}

// Operators returns all operators in ascending id order.
func (g *GameData) Operators() []*models.Operator {
	out := make([]*models.Operator, 0, len(g.operatorIDs))
	for _, id := range g.operatorIDs {
		out = append(out, g.operators[id])
	}
	return out
}

// FindOperator returns the first operator, in ascending id order, whose
// display name matches name case-insensitively, or nil.
func (g *GameData) FindOperator(name string) *models.Operator {
	for _, id := range g.operatorIDs {
		if strings.EqualFold(g.operators[id].Name, name) {
			return g.operators[id]
		}
	}
	return nil
}

// Item returns the item with the given id, or nil.
func (g *GameData) Item(id string) *models.Item {
	return g.items[id]
}

// Items returns all items in ascending id order.
func (g *GameData) Items() []*models.Item {
	out := make([]*models.Item, 0, len(g.itemIDs))
	for _, id := range g.itemIDs {
		out = append(out, g.items[id])
	}
	return out
}

// FindItem returns the first item, in ascending id order, whose name
// matches name case-insensitively, or nil.
func (g *GameData) FindItem(name string) *models.Item {
	for _, id := range g.itemIDs {
		if strings.EqualFold(g.items[id].Name, name) {
			return g.items[id]
		}
	}
	return nil
}

// Room returns the base room definition for the given type; ok is false
// when the building table does not define it.
func (g *GameData) Room(t models.RoomType) (models.Room, bool) {
	r, ok := g.rooms[t]
	return r, ok
}

// BaseSkill returns the building skill with the given id, or nil.
func (g *GameData) BaseSkill(id string) *models.BuildingSkill {
	return g.baseSkills[id]
}

// AlterOf returns the ids of the alternate forms of the given operator,
// in ascending order.
func (g *GameData) AlterOf(id string) []string {
	var out []string
	for _, p := range g.alters {
		if other := p.Other(id); other != "" {
			out = append(out, other)
		}
	}
	sort.Strings(out)
	return out
}
