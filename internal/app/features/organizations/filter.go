// internal/app/features/organizations/filter.go
package organizations

import (
	"strings"

	"github.com/breezehq/breeze-console/internal/domain/models"
	"github.com/samber/lo"
)

// StatusAll is the status filter value that matches every organization.
const StatusAll = "all"

// filterOrganizations returns the organizations whose name contains q
// (case-insensitive) AND whose status equals status. An empty q matches all
// names; an empty or "all" status matches all statuses. Input order is
// preserved and the input slice is never mutated.
func filterOrganizations(orgs []models.Organization, q, status string) []models.Organization {
	needle := strings.ToLower(strings.TrimSpace(q))
	return lo.Filter(orgs, func(o models.Organization, _ int) bool {
		if needle != "" && !strings.Contains(strings.ToLower(o.Name), needle) {
			return false
		}
		if status != "" && status != StatusAll && o.Status != status {
			return false
		}
		return true
	})
}
