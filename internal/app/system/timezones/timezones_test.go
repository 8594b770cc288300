package timezones

import "testing"

func TestLoad(t *testing.T) {
	if err := Load(); err != nil {
		t.Fatalf("Load() = %v", err)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"America/New_York", true},
		{"Europe/London", true},
		{"UTC", true},
		{"Invalid/Timezone", false},
		{"", false},
		{"america/new_york", false}, // IDs are case-sensitive
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := Valid(tt.id); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	if got := Label("Asia/Tokyo"); got != "Japan Time (Tokyo)" {
		t.Errorf("Label(Asia/Tokyo) = %q", got)
	}
	// Unknown IDs fall back to the ID itself.
	if got := Label("Mars/Olympus_Mons"); got != "Mars/Olympus_Mons" {
		t.Errorf("Label fallback = %q", got)
	}
}

func TestGroupsStableAndComplete(t *testing.T) {
	groups, err := Groups()
	if err != nil {
		t.Fatalf("Groups() = %v", err)
	}
	if len(groups) == 0 {
		t.Fatal("expected at least one zone group")
	}
	seen := map[string]bool{}
	total := 0
	for _, g := range groups {
		if seen[g.Region] {
			t.Errorf("region %q appears twice", g.Region)
		}
		seen[g.Region] = true
		total += len(g.Zones)
		for _, z := range g.Zones {
			if !Valid(z.ID) {
				t.Errorf("grouped zone %q not Valid", z.ID)
			}
		}
	}
	if total == 0 {
		t.Error("groups contain no zones")
	}
}
