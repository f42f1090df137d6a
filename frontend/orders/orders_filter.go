package orders

import (
	"sort"
	"strings"
	"time"

	"tecnoreparos/models"
)

// Query is the displayed-list derivation input: status filter, free-text
// search and sort direction.
type Query struct {
	Status string // "all" or one of the four statuses
	Search string
	Sort   string // "newest" (default) or "oldest"
}

// FilterAndSort derives the displayed list. Pure: the input slice is never
// mutated. Both filters commute; sorting is always applied last.
func FilterAndSort(in []models.ServiceOrder, q Query) []models.ServiceOrder {
	result := make([]models.ServiceOrder, 0, len(in))

	status := strings.TrimSpace(q.Status)
	filterByStatus := status != "" && status != "all"

	term := strings.ToLower(strings.TrimSpace(q.Search))

	for _, o := range in {
		if filterByStatus && string(o.Status) != status {
			continue
		}
		if term != "" && !matchesTerm(o, term) {
			continue
		}
		result = append(result, o)
	}

	oldest := q.Sort == "oldest"
	sort.SliceStable(result, func(i, j int) bool {
		a, b := createdAt(result[i]), createdAt(result[j])
		if oldest {
			return a.Before(b)
		}
		return a.After(b)
	})
	return result
}

func matchesTerm(o models.ServiceOrder, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(o.ClientName), lowerTerm) ||
		strings.Contains(strings.ToLower(o.Device), lowerTerm) ||
		strings.Contains(strings.ToLower(o.ID), lowerTerm)
}

func createdAt(o models.ServiceOrder) time.Time {
	t, err := time.Parse(time.RFC3339Nano, o.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
