// internal/app/features/sites/filter.go
package sites

import (
	"strings"

	"github.com/breezehq/breeze-console/internal/domain/models"
	"github.com/samber/lo"
)

// filterSites returns the sites whose name or city contains q
// (case-insensitive). An empty q matches everything. Input order is
// preserved and the input slice is never mutated.
func filterSites(sites []models.Site, q string) []models.Site {
	needle := strings.ToLower(strings.TrimSpace(q))
	if needle == "" {
		return sites
	}
	return lo.Filter(sites, func(s models.Site, _ int) bool {
		return strings.Contains(strings.ToLower(s.Name), needle) ||
			strings.Contains(strings.ToLower(s.City), needle)
	})
}
