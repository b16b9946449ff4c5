// Package admin holds the platform administrator domain: the record types,
// the in-memory store that owns the collection and the list's query state,
// and the pure projection that turns both into a display-ready page.
package admin

import "time"

// Status is the lifecycle state of an administrator account.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// Statuses lists every account status in display order.
var Statuses = []Status{StatusActive, StatusInactive, StatusPending}

// ActivityType categorizes an entry in an administrator's activity feed.
type ActivityType string

const (
	ActivityApproval ActivityType = "approval"
	ActivityCreation ActivityType = "creation"
	ActivityUpdate   ActivityType = "update"
	ActivityDeletion ActivityType = "deletion"
	ActivityLogin    ActivityType = "login"
)

// Society is a managed residential community that administrators oversee.
// Societies are referenced by Admin records, never owned by them.
type Society struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	UnitCount int    `yaml:"unit_count"`
	Location  string `yaml:"location"`
}

// Activity is one entry in an administrator's recent-activity feed. The feed
// is display history only; nothing in the console mutates it.
type Activity struct {
	ID        int          `yaml:"id"`
	Action    string       `yaml:"action"`
	Society   string       `yaml:"society"`
	Timestamp time.Time    `yaml:"timestamp"`
	Type      ActivityType `yaml:"type"`
	Details   string       `yaml:"details,omitempty"`
}

// Admin is a platform administrator account record.
type Admin struct {
	ID                int        `yaml:"id"`
	Name              string     `yaml:"name"`
	Email             string     `yaml:"email"`
	Phone             string     `yaml:"phone"`
	Status            Status     `yaml:"status"`
	AssignedSocieties []Society  `yaml:"assigned_societies"`
	LastActivity      time.Time  `yaml:"last_activity"`
	CreatedAt         time.Time  `yaml:"created_at"`
	LoginCount        int        `yaml:"login_count"`
	TicketsResolved   int        `yaml:"tickets_resolved"`
	RecentActivities  []Activity `yaml:"recent_activities,omitempty"`
}

// HasSociety reports whether the admin is already assigned the society id.
func (a Admin) HasSociety(societyID int) bool {
	for _, s := range a.AssignedSocieties {
		if s.ID == societyID {
			return true
		}
	}
	return false
}

// AssignSociety returns the assignment list with the society appended, or the
// list unchanged when the society id is already present. Duplicate
// assignments are refused up front rather than repaired later.
func AssignSociety(current []Society, s Society) []Society {
	for _, existing := range current {
		if existing.ID == s.ID {
			return current
		}
	}
	return append(current, s)
}

// RemoveSociety returns the assignment list without the given society id.
func RemoveSociety(current []Society, societyID int) []Society {
	out := make([]Society, 0, len(current))
	for _, s := range current {
		if s.ID != societyID {
			out = append(out, s)
		}
	}
	return out
}
