package tables

import (
	"encoding/json"
	"fmt"
	"sort"

	"arkdata/feature/gamedata/models"
)

// BaseSkillRef links a character to a base skill it unlocks, with the
// promotion gate the unlock sits behind.
type BaseSkillRef struct {
	BuffID string
	Phase  int
	Level  int
}

// BuildingData is the decoded building_data.json: the room catalog, the
// base skill catalog, and the per-character unlock lists that the linker
// later resolves against the catalog.
type BuildingData struct {
	Rooms   map[models.RoomType]models.Room
	Skills  map[string]*models.BuildingSkill
	Unlocks map[string][]BaseSkillRef
}

type rawBuilding struct {
	Rooms map[string]struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Description *string `json:"description"`
		MaxCount    flexInt `json:"maxCount"`
		Phases      []struct {
			UnlockCondition string  `json:"unlockCondId"`
			MaxStationedNum flexInt `json:"maxStationedNum"`
			ManpowerCost    flexInt `json:"manpowerCost"`
			ElectricPower   flexInt `json:"electricPower"`
		} `json:"phases"`
	} `json:"rooms"`
	Chars map[string]struct {
		CharID   string `json:"charId"`
		BuffChar []struct {
			BuffData []struct {
				BuffID string `json:"buffId"`
				Cond   struct {
					Phase flexPhase `json:"phase"`
					Level flexInt   `json:"level"`
				} `json:"cond"`
			} `json:"buffData"`
		} `json:"buffChar"`
	} `json:"chars"`
	Buffs map[string]struct {
		BuffID       string  `json:"buffId"`
		BuffName     string  `json:"buffName"`
		Description  *string `json:"description"`
		RoomType     string  `json:"roomType"`
		BuffCategory string  `json:"buffCategory"`
		SortID       flexInt `json:"sortId"`
	} `json:"buffs"`
}

// DecodeBuildingData decodes building_data.json. Unnamed rooms or buffs are
// malformed; a character entry without a charId is keyed by its map key.
func DecodeBuildingData(data []byte) (*BuildingData, error) {
	var raw rawBuilding
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", NameBuilding, err)
	}

	out := &BuildingData{
		Rooms:   make(map[models.RoomType]models.Room, len(raw.Rooms)),
		Skills:  make(map[string]*models.BuildingSkill, len(raw.Buffs)),
		Unlocks: make(map[string][]BaseSkillRef, len(raw.Chars)),
	}

	for key, rr := range raw.Rooms {
		if rr.Name == "" {
			return nil, malformed(NameBuilding, key, "room missing name")
		}
		room := models.Room{
			Type:        models.RoomType(key),
			Name:        rr.Name,
			Description: dashToNil(rr.Description),
		}
		if rr.MaxCount > 0 {
			n := int(rr.MaxCount)
			room.MaxCount = &n
		}
		for _, p := range rr.Phases {
			room.Phases = append(room.Phases, models.RoomPhase{
				UnlockCondition:  p.UnlockCondition,
				Power:            int(p.ElectricPower),
				OperatorCapacity: int(p.MaxStationedNum),
				ManpowerCost:     int(p.ManpowerCost),
			})
		}
		out.Rooms[room.Type] = room
	}

	for key, rb := range raw.Buffs {
		if rb.BuffName == "" {
			return nil, malformed(NameBuilding, key, "buff missing name")
		}
		id := rb.BuffID
		if id == "" {
			id = key
		}
		out.Skills[id] = &models.BuildingSkill{
			ID:          id,
			Name:        rb.BuffName,
			Description: dashToNil(rb.Description),
			RoomType:    models.RoomType(rb.RoomType),
			Category:    rb.BuffCategory,
			SortID:      int(rb.SortID),
		}
	}

	for key, rc := range raw.Chars {
		id := rc.CharID
		if id == "" {
			id = key
		}
		var refs []BaseSkillRef
		for _, bc := range rc.BuffChar {
			for _, bd := range bc.BuffData {
				if bd.BuffID == "" {
					continue
				}
				refs = append(refs, BaseSkillRef{
					BuffID: bd.BuffID,
					Phase:  int(bd.Cond.Phase),
					Level:  int(bd.Cond.Level),
				})
			}
		}
		// Stable order by unlock gate, then id, so linking is deterministic
		// regardless of how the source interleaves buff groups.
		sort.SliceStable(refs, func(i, j int) bool {
			if refs[i].Phase != refs[j].Phase {
				return refs[i].Phase < refs[j].Phase
			}
			if refs[i].Level != refs[j].Level {
				return refs[i].Level < refs[j].Level
			}
			return refs[i].BuffID < refs[j].BuffID
		})
		out.Unlocks[id] = refs
	}
	return out, nil
}
