package tables

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"arkdata/feature/gamedata/models"
)

type rawHandbookTable struct {
	HandbookDict map[string]rawHandbookEntry `json:"handbookDict"`
}

type rawHandbookEntry struct {
	CharID         string  `json:"charID"`
	DrawName       *string `json:"drawName"`
	StoryTextAudio []struct {
		StoryTitle string `json:"storyTitle"`
		Stories    []struct {
			StoryText   string          `json:"storyText"`
			UnLockType  json.RawMessage `json:"unLockType"`
			UnLockParam string          `json:"unLockParam"`
		} `json:"stories"`
	} `json:"storyTextAudio"`
}

// decodeHandbookUnlock resolves the overloaded unLockParam field. An empty
// param means the section is always visible. A bare integer is a trust
// threshold. "phase;level" is a promotion gate. Anything else paired with
// unlock type 6 names another operator whose recruitment reveals the
// section; the remaining cases fall back to always visible.
func decodeHandbookUnlock(unlockType json.RawMessage, param string) models.HandbookUnlock {
	param = strings.TrimSpace(param)
	if param == "" {
		return models.HandbookUnlock{Kind: models.UnlockAlways}
	}
	if n, err := strconv.Atoi(param); err == nil {
		return models.HandbookUnlock{Kind: models.UnlockTrust, Trust: n}
	}
	if before, after, ok := strings.Cut(param, ";"); ok {
		phase, perr := strconv.Atoi(before)
		level, lerr := strconv.Atoi(after)
		if perr == nil && lerr == nil {
			return models.HandbookUnlock{
				Kind:      models.UnlockPromotion,
				Promotion: &models.PromotionRequirement{Phase: phase, Level: level},
			}
		}
	}
	if isUnlockType(unlockType, 6, "DIRECT") {
		return models.HandbookUnlock{Kind: models.UnlockOperator, OperatorID: param}
	}
	return models.HandbookUnlock{Kind: models.UnlockAlways}
}

// isUnlockType matches the unLockType field against a numeric code or its
// string spelling; the source uses both encodings across regions.
func isUnlockType(raw json.RawMessage, code int, name string) bool {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if json.Unmarshal(raw, &str) == nil {
			return str == name
		}
		return false
	}
	var n int
	if json.Unmarshal(raw, &n) == nil {
		return n == code
	}
	return false
}

// DecodeHandbookTable decodes handbook_info_table.json into entries keyed
// by character id. Each storyTextAudio section contributes its first story;
// the source never carries more than one in practice.
func DecodeHandbookTable(data []byte) (map[string]*models.HandbookEntry, error) {
	var raw rawHandbookTable
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", NameHandbook, err)
	}

	out := make(map[string]*models.HandbookEntry, len(raw.HandbookDict))
	for key, re := range raw.HandbookDict {
		id := re.CharID
		if id == "" {
			id = key
		}
		entry := &models.HandbookEntry{
			OperatorID:  id,
			Illustrator: blankToNil(re.DrawName),
		}
		for _, sta := range re.StoryTextAudio {
			if len(sta.Stories) == 0 {
				continue
			}
			story := sta.Stories[0]
			entry.Sections = append(entry.Sections, models.HandbookSection{
				Title:  sta.StoryTitle,
				Text:   story.StoryText,
				Unlock: decodeHandbookUnlock(story.UnLockType, story.UnLockParam),
			})
		}
		out[id] = entry
	}
	return out, nil
}
