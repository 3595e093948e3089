package source

import (
	"context"
	"errors"
)

// Table identifies one of the six fixed gamedata tables.
type Table string

const (
	TableCharacter     Table = "character_table"
	TableCharacterMeta Table = "char_meta_table"
	TableHandbook      Table = "handbook_info_table"
	TableSkill         Table = "skill_table"
	TableBuilding      Table = "building_data"
	TableItem          Table = "item_table"
)

// Tables lists every table a complete tree must provide, in canonical order.
var Tables = []Table{
	TableCharacter,
	TableCharacterMeta,
	TableHandbook,
	TableSkill,
	TableBuilding,
	TableItem,
}

// Path returns the table's location relative to the gamedata root.
func (t Table) Path() string {
	return "excel/" + string(t) + ".json"
}

var (
	// ErrNotFound indicates the requested tree/region does not contain the table.
	ErrNotFound = errors.New("table not found in source")
	// ErrUnavailable indicates the source itself could not be reached.
	ErrUnavailable = errors.New("source unavailable")
)

// Source delivers raw table content from one game data tree.
//
// Implementations perform no caching and no retries; every call is an
// independent fetch.
type Source interface {
	// FetchTable returns the raw JSON bytes of the given table.
	// Failures wrap ErrNotFound or ErrUnavailable.
	FetchTable(ctx context.Context, table Table) ([]byte, error)
	// StatTable checks that the table exists without fetching its content.
	// Failures wrap the same sentinels as FetchTable.
	StatTable(ctx context.Context, table Table) error
}

// Check probes every required table and returns the ones that are missing.
// Unavailability errors abort the check since no result would be meaningful.
func Check(ctx context.Context, src Source) ([]Table, error) {
	var missing []Table
	for _, table := range Tables {
		err := src.StatTable(ctx, table)
		switch {
		case err == nil:
		case errors.Is(err, ErrNotFound):
			missing = append(missing, table)
		default:
			return nil, err
		}
	}
	return missing, nil
}
