// Package timezones holds the curated IANA zone list offered in site and
// organization forms. Submitted zones are validated against this list, not
// against the host tzdata, so the console and the platform agree on what a
// site timezone can be.
package timezones

import (
	"embed"
	"encoding/json"
	"sort"
	"sync"
)

//go:embed timezonedata/timezones.json
var fs embed.FS

type Zone struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Region string `json:"region,omitempty"`
}

type ZoneGroup struct {
	Region string
	Zones  []Zone
}

var (
	once    sync.Once
	byID    map[string]Zone
	groups  []ZoneGroup
	loadErr error
)

func load() {
	once.Do(func() {
		data, err := fs.ReadFile("timezonedata/timezones.json")
		if err != nil {
			loadErr = err
			return
		}
		var zones []Zone
		if err := json.Unmarshal(data, &zones); err != nil {
			loadErr = err
			return
		}

		byID = make(map[string]Zone, len(zones))
		byRegion := make(map[string][]Zone)
		for _, z := range zones {
			byID[z.ID] = z
			region := z.Region
			if region == "" {
				region = "Other"
			}
			byRegion[region] = append(byRegion[region], z)
		}

		groups = make([]ZoneGroup, 0, len(byRegion))
		for region, zs := range byRegion {
			sort.SliceStable(zs, func(i, j int) bool { return zs[i].Label < zs[j].Label })
			groups = append(groups, ZoneGroup{Region: region, Zones: zs})
		}
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Region < groups[j].Region })
	})
}

// Load is optional: call it at startup to fail fast if the embedded zone
// data is broken.
func Load() error {
	load()
	return loadErr
}

// Valid reports whether id exists in the curated list.
func Valid(id string) bool {
	load()
	if loadErr != nil {
		return false
	}
	_, ok := byID[id]
	return ok
}

// Label returns the display label for an ID, or the ID itself if unknown.
func Label(id string) string {
	load()
	if loadErr == nil {
		if z, ok := byID[id]; ok && z.Label != "" {
			return z.Label
		}
	}
	return id
}

// Groups returns the curated zones grouped by region for select rendering.
func Groups() ([]ZoneGroup, error) {
	load()
	if loadErr != nil {
		return nil, loadErr
	}
	return groups, nil
}
