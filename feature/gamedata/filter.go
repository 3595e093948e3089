package gamedata

import (
	"strings"

	"arkdata/feature/gamedata/tables"
)

// isPlayable reports whether a character record describes an operator the
// player can actually own and deploy. The character table mixes operators
// with summoned tokens, trap devices and story-only units; those are
// recognizable by profession, id prefix, sub-profession, or the explicit
// obtainability flag.
func isPlayable(rec tables.CharacterRecord) bool {
	if rec.IsUnobtainable {
		return false
	}
	switch rec.Profession {
	case "TOKEN", "TRAP":
		return false
	}
	if strings.HasPrefix(rec.ID, "token_") || strings.HasPrefix(rec.ID, "trap_") {
		return false
	}
	switch rec.SubProfession {
	case "notchar1", "notchar2", "none", "none1", "none2":
		return false
	}
	switch rec.Position {
	case "ALL", "NONE":
		return false
	}
	return true
}

// filterPlayable drops every non-playable record. The input map is left
// untouched.
func filterPlayable(records map[string]tables.CharacterRecord) map[string]tables.CharacterRecord {
	out := make(map[string]tables.CharacterRecord, len(records))
	for id, rec := range records {
		if isPlayable(rec) {
			out[id] = rec
		}
	}
	return out
}
