package models

import "testing"

func TestOrganizationCreatedDate(t *testing.T) {
	tests := []struct {
		createdAt string
		want      string
	}{
		{"2024-03-07T15:04:05Z", "3/7/2024"},
		{"2024-03-07", "3/7/2024"},
		{"2024-11-30", "11/30/2024"},
		{"not-a-date", "not-a-date"},
		{"", ""},
	}

	for _, tt := range tests {
		o := Organization{CreatedAt: tt.createdAt}
		if got := o.CreatedDate(); got != tt.want {
			t.Errorf("CreatedDate(%q) = %q, want %q", tt.createdAt, got, tt.want)
		}
	}
}
