package tables

import (
	"encoding/json"
	"fmt"

	"arkdata/feature/gamedata/models"
)

type rawItemTable struct {
	Items map[string]rawItem `json:"items"`
}

type rawItem struct {
	ItemID         string     `json:"itemId"`
	Name           string     `json:"name"`
	Description    *string    `json:"description"`
	Rarity         flexRarity `json:"rarity"`
	IconID         string     `json:"iconId"`
	Usage          *string    `json:"usage"`
	ObtainApproach stringList `json:"obtainApproach"`
	ClassifyType   string     `json:"classifyType"`
	ItemType       string     `json:"itemType"`
}

func itemClass(classify string) models.ItemClass {
	switch classify {
	case "CONSUME":
		return models.ItemClassConsumable
	case "NORMAL":
		return models.ItemClassBasic
	case "MATERIAL":
		return models.ItemClassMaterial
	default:
		return models.ItemClassOther
	}
}

// DecodeItemTable decodes item_table.json into items keyed by item id.
// Items need no cross-table linking, so the decoder produces the final
// model directly.
func DecodeItemTable(data []byte) (map[string]*models.Item, error) {
	var raw rawItemTable
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", NameItem, err)
	}

	out := make(map[string]*models.Item, len(raw.Items))
	for key, ri := range raw.Items {
		if ri.Name == "" {
			return nil, malformed(NameItem, key, "missing name")
		}
		id := ri.ItemID
		if id == "" {
			id = key
		}
		out[id] = &models.Item{
			ID:          id,
			Name:        ri.Name,
			Description: dashToNil(ri.Description),
			Rarity:      models.Rarity(ri.Rarity),
			IconID:      ri.IconID,
			Usage:       dashToNil(ri.Usage),
			Obtain:      ri.ObtainApproach,
			Class:       itemClass(ri.ClassifyType),
			Type:        ri.ItemType,
		}
	}
	return out, nil
}
