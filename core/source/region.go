package source

import "fmt"

// Region is a localized game data tree selectable at load time.
type Region string

const (
	RegionEnUS Region = "en_US"
	RegionJaJP Region = "ja_JP"
	RegionKoKR Region = "ko_KR"
	RegionZhCN Region = "zh_CN"
	RegionZhTW Region = "zh_TW"
)

// Regions lists every known region.
var Regions = []Region{RegionEnUS, RegionJaJP, RegionKoKR, RegionZhCN, RegionZhTW}

// ParseRegion validates a region string.
func ParseRegion(s string) (Region, error) {
	for _, r := range Regions {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown region %q: expected one of \"en_US\", \"ja_JP\", \"ko_KR\", \"zh_CN\", or \"zh_TW\"", s)
}

func (r Region) String() string {
	return string(r)
}
