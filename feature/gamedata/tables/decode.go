package tables

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"arkdata/feature/gamedata/models"
)

// flexInt accepts integers that the source encodes either as JSON numbers
// or as numeric strings, and normalizes them to int. null decodes to zero.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("invalid numeric string %q", str)
		}
		*f = flexInt(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexInt(v)
	return nil
}

// flexPhase accepts elite phases encoded as numbers (0, 1, 2) or as the
// newer "PHASE_N" strings.
type flexPhase int

func (f *flexPhase) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		if n, ok := strings.CutPrefix(str, "PHASE_"); ok {
			v, err := strconv.Atoi(n)
			if err != nil {
				return fmt.Errorf("invalid phase %q", str)
			}
			*f = flexPhase(v)
			return nil
		}
		return fmt.Errorf("invalid phase %q", str)
	}
	var fi flexInt
	if err := fi.UnmarshalJSON(data); err != nil {
		return err
	}
	*f = flexPhase(fi)
	return nil
}

// flexRarity normalizes the two rarity encodings to the 1-6 star scale:
// plain numbers are 0-based (3 means four stars), "TIER_N" strings are the
// star count itself.
type flexRarity models.Rarity

func (f *flexRarity) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		if n, ok := strings.CutPrefix(str, "TIER_"); ok {
			v, err := strconv.Atoi(n)
			if err != nil || v < 1 {
				return fmt.Errorf("invalid rarity %q", str)
			}
			*f = flexRarity(v)
			return nil
		}
		return fmt.Errorf("invalid rarity %q", str)
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexRarity(v + 1)
	return nil
}

// stringList accepts null, a single string, or a list of strings.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*l = nil
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		if strings.TrimSpace(str) == "" {
			*l = nil
			return nil
		}
		*l = stringList{str}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*l = stringList(list)
	return nil
}

// blankToNil folds blank strings into absence. The source uses "" and null
// interchangeably for missing text.
func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// dashToNil treats the "-" placeholder the source uses for "no description"
// as absence, on top of blankToNil.
func dashToNil(s *string) *string {
	s = blankToNil(s)
	if s != nil && strings.TrimSpace(*s) == "-" {
		return nil
	}
	return s
}
