package tables

import (
	"encoding/json"
	"fmt"
	"sort"

	"arkdata/feature/gamedata/models"
)

type rawCharMeta struct {
	SpCharGroups map[string][]string `json:"spCharGroups"`
}

// DecodeCharacterMetaTable decodes char_meta_table.json into the list of
// alternate-operator pairs. Groups with more than two members pair every
// member with every other; the result is deduplicated and sorted so the
// same input always yields the same list.
func DecodeCharacterMetaTable(data []byte) ([]models.AlterPair, error) {
	var raw rawCharMeta
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", NameCharacterMeta, err)
	}

	seen := make(map[models.AlterPair]struct{})
	var pairs []models.AlterPair
	groups := make([]string, 0, len(raw.SpCharGroups))
	for g := range raw.SpCharGroups {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	for _, g := range groups {
		members := raw.SpCharGroups[g]
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				if members[i] == "" || members[j] == "" || members[i] == members[j] {
					continue
				}
				p := models.NewAlterPair(members[i], members[j])
				if _, ok := seen[p]; ok {
					continue
				}
				seen[p] = struct{}{}
				pairs = append(pairs, p)
			}
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].First != pairs[j].First {
			return pairs[i].First < pairs[j].First
		}
		return pairs[i].Second < pairs[j].Second
	})
	return pairs, nil
}
