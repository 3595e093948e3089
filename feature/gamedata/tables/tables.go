// Package tables decodes the raw upstream JSON tables into typed
// intermediate records.
//
// Each decoder is a pure function of one table's bytes: it never consults
// another table, and it resolves the upstream data quirks (blank strings
// standing in for null, numbers encoded as strings, `-` descriptions) into
// explicit optional values. Records missing their identity fields fail the
// decode with a MalformedRecordError; every other absence degrades to an
// absent value.
package tables

import "fmt"

// Upstream table names, used for error context.
const (
	NameCharacter     = "character_table"
	NameCharacterMeta = "char_meta_table"
	NameHandbook      = "handbook_info_table"
	NameSkill         = "skill_table"
	NameBuilding      = "building_data"
	NameItem          = "item_table"
)

// MalformedRecordError reports a record that violates the required-field
// invariants of its table.
type MalformedRecordError struct {
	// Table is the upstream table name.
	Table string
	// ID is the record id, when known.
	ID string
	// Reason names the missing or invalid field.
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("malformed record in %s: %s", e.Table, e.Reason)
	}
	return fmt.Sprintf("malformed record %q in %s: %s", e.ID, e.Table, e.Reason)
}

func malformed(table, id, reason string) error {
	return &MalformedRecordError{Table: table, ID: id, Reason: reason}
}
