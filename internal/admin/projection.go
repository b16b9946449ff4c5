package admin

import (
	"sort"
	"strings"
)

// PageSize is the fixed number of admins shown per page.
const PageSize = 12

// Page is the display-ready slice of the collection plus the pagination
// metadata the list footer renders ("Showing X to Y of Z").
type Page struct {
	Items      []Admin
	TotalPages int
	TotalCount int
	RangeStart int // 1-based inclusive; 0 when the page is empty
	RangeEnd   int // 1-based inclusive; 0 when the page is empty
}

// IDs returns the ids of the displayed admins, in display order.
func (p Page) IDs() []int {
	ids := make([]int, len(p.Items))
	for i, a := range p.Items {
		ids[i] = a.ID
	}
	return ids
}

// Matching returns the full filtered and sorted collection for the query,
// ignoring pagination. Exports use it to cover every page at once.
func Matching(admins []Admin, q Query) []Admin {
	filtered := filterAdmins(admins, q.Search, q.Status)
	sortAdmins(filtered, q.SortBy, q.SortOrder)
	return filtered
}

// Project computes the filtered, sorted, paginated view of the collection for
// the given query state. It is a pure function: the input slice is never
// mutated and the same inputs always produce the same page.
func Project(admins []Admin, q Query) Page {
	filtered := Matching(admins, q)

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	offset := (q.Page - 1) * PageSize
	var items []Admin
	if offset >= 0 && offset < total {
		end := offset + PageSize
		if end > total {
			end = total
		}
		items = filtered[offset:end]
	}

	page := Page{
		Items:      items,
		TotalPages: totalPages,
		TotalCount: total,
	}
	if len(items) > 0 {
		page.RangeStart = offset + 1
		page.RangeEnd = offset + len(items)
	}
	return page
}

// filterAdmins keeps admins whose name or email contains the search term
// (case-insensitive; the empty term matches everything) and whose status
// matches the filter (StatusAll matches every status).
func filterAdmins(admins []Admin, search, status string) []Admin {
	term := strings.ToLower(search)
	out := make([]Admin, 0, len(admins))
	for _, a := range admins {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(a.Name), term) ||
			strings.Contains(strings.ToLower(a.Email), term)
		matchesStatus := status == StatusAll || string(a.Status) == status
		if matchesSearch && matchesStatus {
			out = append(out, a)
		}
	}
	return out
}

// sortAdmins orders the slice in place by the sort key and direction. The
// sort is explicitly stable so that equal keys keep their pre-sort relative
// order; an unrecognized key leaves the order untouched.
func sortAdmins(admins []Admin, key SortKey, order SortOrder) {
	var less func(a, b Admin) bool
	switch key {
	case SortByName:
		less = func(a, b Admin) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case SortByLastActivity:
		less = func(a, b Admin) bool {
			return a.LastActivity.Before(b.LastActivity)
		}
	case SortBySocieties:
		less = func(a, b Admin) bool {
			return len(a.AssignedSocieties) < len(b.AssignedSocieties)
		}
	case SortByPerformance:
		less = func(a, b Admin) bool {
			return a.TicketsResolved < b.TicketsResolved
		}
	default:
		return
	}
	sort.SliceStable(admins, func(i, j int) bool {
		if order == SortDesc {
			return less(admins[j], admins[i])
		}
		return less(admins[i], admins[j])
	})
}
