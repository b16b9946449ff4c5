package admin

import (
	"sort"
	"sync"
	"time"
)

// SortKey selects the column used to order the admin list.
type SortKey string

const (
	SortByName         SortKey = "name"
	SortByLastActivity SortKey = "lastActivity"
	SortBySocieties    SortKey = "societies"
	SortByPerformance  SortKey = "performance"
)

// SortOrder is the direction of the list ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// StatusAll is the filter wildcard that matches every account status.
const StatusAll = "all"

// Query is the transient list state: what the user is searching for, how the
// list is filtered and ordered, and which page is showing.
type Query struct {
	Search    string
	Status    string // StatusAll or one of the Status values
	SortBy    SortKey
	SortOrder SortOrder
	Page      int // 1-based; the store never clamps it
}

// DefaultQuery is the list state the console opens with.
func DefaultQuery() Query {
	return Query{
		Status:    StatusAll,
		SortBy:    SortByName,
		SortOrder: SortAsc,
		Page:      1,
	}
}

// StoreOption customizes a Store during construction.
type StoreOption func(*Store)

// WithClock overrides the clock used to stamp createdAt and lastActivity.
func WithClock(clock func() time.Time) StoreOption {
	return func(s *Store) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithQuery seeds the initial list state, typically from config defaults.
func WithQuery(q Query) StoreOption {
	return func(s *Store) {
		if q.Status == "" {
			q.Status = StatusAll
		}
		if q.Page < 1 {
			q.Page = 1
		}
		s.query = q
	}
}

// Store is the single source of truth for the admin collection and the list's
// query state. Every mutation goes through its methods; readers get copies or
// projections, never the backing slice. The mutex exists because bubbletea
// commands run on goroutines, not because the console is multi-user.
type Store struct {
	mu       sync.Mutex
	admins   []Admin
	query    Query
	selected map[int]struct{}
	focused  *Admin
	now      func() time.Time
}

// NewStore builds a store seeded with the given records. The seed order is
// preserved; it is the tie-break order for every stable sort thereafter.
func NewStore(seed []Admin, opts ...StoreOption) *Store {
	s := &Store{
		admins:   append([]Admin(nil), seed...),
		query:    DefaultQuery(),
		selected: map[int]struct{}{},
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Admins returns a copy of the current collection in insertion order.
func (s *Store) Admins() []Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Admin(nil), s.admins...)
}

// Len reports how many admins are in the collection.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.admins)
}

// Get returns the admin with the given id, if present.
func (s *Store) Get(id int) (Admin, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if a.ID == id {
			return a, true
		}
	}
	return Admin{}, false
}

// Create assigns a fresh id (max existing + 1, or 1 for an empty collection),
// stamps createdAt and lastActivity, and appends the record. Ids grow
// monotonically, so a deleted id is never handed out again. Duplicate names
// or emails are permitted; the console does not enforce uniqueness on them.
func (s *Store) Create(fields Admin) Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	maxID := 0
	for _, a := range s.admins {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	now := s.now()
	fields.ID = maxID + 1
	fields.CreatedAt = now
	fields.LastActivity = now
	s.admins = append(s.admins, fields)
	return fields
}

// Update replaces the record matching updated.ID by full-value substitution,
// except that createdAt is carried over from the existing record and
// lastActivity is refreshed to now. A missing id is a silent no-op. When the
// updated record is the focused one, focus is refreshed so the detail view
// stays consistent.
func (s *Store) Update(updated Admin) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.admins {
		if a.ID != updated.ID {
			continue
		}
		updated.CreatedAt = a.CreatedAt
		updated.LastActivity = s.now()
		s.admins[i] = updated
		if s.focused != nil && s.focused.ID == updated.ID {
			refreshed := updated
			s.focused = &refreshed
		}
		return
	}
}

// Delete removes the record with the given id, drops it from the selection
// set, and clears focus if it was the focused record. A missing id is a
// silent no-op.
func (s *Store) Delete(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.admins {
		if a.ID != id {
			continue
		}
		s.admins = append(s.admins[:i], s.admins[i+1:]...)
		delete(s.selected, id)
		if s.focused != nil && s.focused.ID == id {
			s.focused = nil
		}
		return
	}
}

// ToggleStatus swaps an active account to inactive or an inactive account to
// active. Pending accounts are left alone: toggle never moves through or into
// pending. Missing ids are a silent no-op.
func (s *Store) ToggleStatus(id int) {
	current, ok := s.Get(id)
	if !ok {
		return
	}
	switch current.Status {
	case StatusActive:
		current.Status = StatusInactive
	case StatusInactive:
		current.Status = StatusActive
	default:
		return
	}
	s.Update(current)
}

// SetStatusMany applies the given status to every id in the list. Used by the
// bulk enable/disable actions over the current selection.
func (s *Store) SetStatusMany(ids []int, status Status) {
	for _, id := range ids {
		current, ok := s.Get(id)
		if !ok {
			continue
		}
		current.Status = status
		s.Update(current)
	}
}

// Query returns the current list state.
func (s *Store) Query() Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// SetSearchTerm updates the search text.
func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Search = term
}

// SetStatusFilter updates the status filter (StatusAll or a Status value).
func (s *Store) SetStatusFilter(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Status = status
}

// SetSortBy updates the sort column.
func (s *Store) SetSortBy(key SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.SortBy = key
}

// SetSortOrder updates the sort direction.
func (s *Store) SetSortOrder(order SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.SortOrder = order
}

// SetCurrentPage updates the 1-based page number. Out-of-range pages are
// tolerated here; the projection simply yields an empty page for them.
func (s *Store) SetCurrentPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Page = page
}

// SelectedIDs returns the ids currently multi-selected, in ascending order.
func (s *Store) SelectedIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// SelectedCount reports how many admins are multi-selected.
func (s *Store) SelectedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selected)
}

// IsSelected reports whether the id is in the multi-select set.
func (s *Store) IsSelected(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.selected[id]
	return ok
}

// SetSelectedIDs replaces the multi-select set with exactly the given ids.
func (s *Store) SetSelectedIDs(ids []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[int]struct{}, len(ids))
	for _, id := range ids {
		s.selected[id] = struct{}{}
	}
}

// ToggleSelected adds the id to the selection if absent, removes it if present.
func (s *Store) ToggleSelected(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
	} else {
		s.selected[id] = struct{}{}
	}
}

// AllSelected reports whether every one of the given page ids is selected and
// the page is non-empty. This drives the select-all checkbox state.
func (s *Store) AllSelected(pageIDs []int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(pageIDs) == 0 {
		return false
	}
	for _, id := range pageIDs {
		if _, ok := s.selected[id]; !ok {
			return false
		}
	}
	return true
}

// ToggleSelectAll selects exactly the given page ids, or clears the selection
// when they are all already selected. Select-all is scoped to the displayed
// page, not the full filtered set.
func (s *Store) ToggleSelectAll(pageIDs []int) {
	if s.AllSelected(pageIDs) {
		s.SetSelectedIDs(nil)
		return
	}
	s.SetSelectedIDs(pageIDs)
}

// SetFocusedAdmin sets (or, with nil, clears) the record shown in detail view.
// The store keeps its own copy so callers cannot mutate it out from under the
// detail screen.
func (s *Store) SetFocusedAdmin(a *Admin) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a == nil {
		s.focused = nil
		return
	}
	copied := *a
	s.focused = &copied
}

// FocusedAdmin returns the record in detail view, if any.
func (s *Store) FocusedAdmin() (Admin, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.focused == nil {
		return Admin{}, false
	}
	return *s.focused, true
}

// Project computes the display-ready page for the current collection and
// query state.
func (s *Store) Project() Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Project(s.admins, s.query)
}
