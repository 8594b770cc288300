package sites

import (
	"reflect"
	"testing"

	"github.com/breezehq/breeze-console/internal/domain/models"
)

func TestFilterSites(t *testing.T) {
	sample := []models.Site{
		{ID: "1", Name: "Downtown Depot", City: "Columbia"},
		{ID: "2", Name: "Northside Hub", City: "Springfield"},
		{ID: "3", Name: "columbia annex", City: "Jefferson"},
	}

	ids := func(s []models.Site) []string {
		out := make([]string, 0, len(s))
		for _, site := range s {
			out = append(out, site.ID)
		}
		return out
	}

	tests := []struct {
		name string
		q    string
		want []string
	}{
		{"empty matches all", "", []string{"1", "2", "3"}},
		{"matches name case-insensitive", "NORTHSIDE", []string{"2"}},
		{"matches name or city", "columbia", []string{"1", "3"}},
		{"trims whitespace", "  hub ", []string{"2"}},
		{"no matches", "zebra", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(filterSites(sample, tt.q))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("filterSites(%q) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestSiteLocation(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"Columbia", "MO", "USA"}, "Columbia, MO, USA"},
		{[]string{"", "MO", ""}, "MO"},
		{[]string{"", "", ""}, ""},
	}
	for _, tt := range tests {
		if got := siteLocation(tt.parts...); got != tt.want {
			t.Errorf("siteLocation(%v) = %q, want %q", tt.parts, got, tt.want)
		}
	}
}
