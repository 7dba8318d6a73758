package tour

import (
	"sort"

	"aotearoa/internal/customer"
)

// Project flattens the catalog into one Group per (tour name, departure date)
// pair, ordered by tour name ascending then date ascending. The pair is
// unique across the catalog, so the order is total.
//
// The result is a fresh snapshot: member lists are copied, and the projection
// is recomputed on every call rather than cached, because the selection
// numbers shown to the user are positional and must be re-derived after every
// mutation.
func Project(tours []Tour) []Group {
	var groups []Group
	for _, t := range tours {
		for date, members := range t.Groups {
			groups = append(groups, Group{
				TourName:       t.Name,
				Date:           date,
				AgeRestriction: t.AgeRestriction,
				Members:        append([]customer.ID{}, members...),
			})
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].TourName != groups[j].TourName {
			return groups[i].TourName < groups[j].TourName
		}
		return groups[i].Date.Before(groups[j].Date)
	})
	return groups
}
