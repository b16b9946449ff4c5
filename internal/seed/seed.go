// Package seed provides the dataset the console boots with. The collection is
// ephemeral; every process start reinitializes from this seed. A YAML file at
// .superadmin/seed.yaml replaces the built-in dataset when present, so
// operators can demo against their own records.
package seed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"superadmin/internal/admin"
)

// Dataset is the seed input: the society catalog available for assignment and
// the initial admin collection, both in a fixed order.
type Dataset struct {
	Societies []admin.Society `yaml:"societies"`
	Admins    []admin.Admin   `yaml:"admins"`
}

// Load reads a YAML dataset from path, falling back to the built-in dataset
// when the file does not exist.
func Load(path string, now time.Time) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(now), nil
		}
		return Dataset{}, fmt.Errorf("seed: read %s: %w", path, err)
	}
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("seed: parse %s: %w", path, err)
	}
	if err := validate(ds); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// validate rejects datasets that would break the store's invariants before
// they ever reach it.
func validate(ds Dataset) error {
	seenSocieties := map[int]struct{}{}
	for _, s := range ds.Societies {
		if s.ID <= 0 {
			return fmt.Errorf("seed: society %q must have a positive id", s.Name)
		}
		if _, ok := seenSocieties[s.ID]; ok {
			return fmt.Errorf("seed: duplicate society id %d", s.ID)
		}
		seenSocieties[s.ID] = struct{}{}
	}
	seenAdmins := map[int]struct{}{}
	for _, a := range ds.Admins {
		if a.ID <= 0 {
			return fmt.Errorf("seed: admin %q must have a positive id", a.Name)
		}
		if _, ok := seenAdmins[a.ID]; ok {
			return fmt.Errorf("seed: duplicate admin id %d", a.ID)
		}
		seenAdmins[a.ID] = struct{}{}
		assigned := map[int]struct{}{}
		for _, s := range a.AssignedSocieties {
			if _, ok := assigned[s.ID]; ok {
				return fmt.Errorf("seed: admin %q assigned society %d twice", a.Name, s.ID)
			}
			assigned[s.ID] = struct{}{}
		}
	}
	return nil
}

// Default returns the built-in demo dataset. Timestamps are offsets from now
// so the relative-time column always reads sensibly.
func Default(now time.Time) Dataset {
	societies := []admin.Society{
		{ID: 1, Name: "Green Valley Residency", UnitCount: 245, Location: "North District"},
		{ID: 2, Name: "Sunshine Apartments", UnitCount: 180, Location: "Central Area"},
		{ID: 3, Name: "Royal Gardens", UnitCount: 320, Location: "South Zone"},
		{ID: 4, Name: "Blue Ridge Complex", UnitCount: 156, Location: "East Side"},
		{ID: 5, Name: "Golden Heights", UnitCount: 280, Location: "West End"},
		{ID: 6, Name: "Silver Oak Towers", UnitCount: 195, Location: "Downtown"},
		{ID: 7, Name: "Emerald Park", UnitCount: 225, Location: "Uptown"},
		{ID: 8, Name: "Crystal Bay", UnitCount: 167, Location: "Waterfront"},
	}

	admins := []admin.Admin{
		{
			ID:                1,
			Name:              "Sarah Johnson",
			Email:             "sarah.johnson@platform.com",
			Phone:             "+1 (555) 123-4567",
			Status:            admin.StatusActive,
			AssignedSocieties: []admin.Society{societies[0], societies[1], societies[2]},
			LastActivity:      now.Add(-2 * time.Hour),
			CreatedAt:         time.Date(2024, time.August, 15, 9, 0, 0, 0, time.UTC),
			LoginCount:        156,
			TicketsResolved:   89,
			RecentActivities:  activities(now),
		},
		{
			ID:                2,
			Name:              "Michael Chen",
			Email:             "michael.chen@platform.com",
			Phone:             "+1 (555) 234-5678",
			Status:            admin.StatusActive,
			AssignedSocieties: []admin.Society{societies[3], societies[4]},
			LastActivity:      now.Add(-4 * time.Hour),
			CreatedAt:         time.Date(2024, time.July, 20, 14, 30, 0, 0, time.UTC),
			LoginCount:        203,
			TicketsResolved:   124,
			RecentActivities:  activities(now),
		},
		{
			ID:                3,
			Name:              "Emily Rodriguez",
			Email:             "emily.rodriguez@platform.com",
			Phone:             "+1 (555) 345-6789",
			Status:            admin.StatusInactive,
			AssignedSocieties: []admin.Society{societies[5]},
			LastActivity:      now.Add(-7 * 24 * time.Hour),
			CreatedAt:         time.Date(2024, time.September, 10, 11, 15, 0, 0, time.UTC),
			LoginCount:        78,
			TicketsResolved:   45,
			RecentActivities:  activities(now),
		},
		{
			ID:                4,
			Name:              "David Kumar",
			Email:             "david.kumar@platform.com",
			Phone:             "+1 (555) 456-7890",
			Status:            admin.StatusPending,
			AssignedSocieties: []admin.Society{},
			LastActivity:      now.Add(-24 * time.Hour),
			CreatedAt:         time.Date(2025, time.January, 20, 16, 45, 0, 0, time.UTC),
			LoginCount:        12,
			TicketsResolved:   3,
			RecentActivities:  activities(now),
		},
		{
			ID:                5,
			Name:              "Lisa Thompson",
			Email:             "lisa.thompson@platform.com",
			Phone:             "+1 (555) 567-8901",
			Status:            admin.StatusActive,
			AssignedSocieties: []admin.Society{societies[6], societies[7]},
			LastActivity:      now.Add(-30 * time.Minute),
			CreatedAt:         time.Date(2024, time.June, 5, 8, 20, 0, 0, time.UTC),
			LoginCount:        289,
			TicketsResolved:   167,
			RecentActivities:  activities(now),
		},
		{
			ID:                6,
			Name:              "James Wilson",
			Email:             "james.wilson@platform.com",
			Phone:             "+1 (555) 678-9012",
			Status:            admin.StatusActive,
			AssignedSocieties: []admin.Society{societies[1], societies[3]},
			LastActivity:      now.Add(-6 * time.Hour),
			CreatedAt:         time.Date(2024, time.May, 12, 13, 10, 0, 0, time.UTC),
			LoginCount:        198,
			TicketsResolved:   112,
			RecentActivities:  activities(now),
		},
	}

	return Dataset{Societies: societies, Admins: admins}
}

// activities builds the shared demo activity feed with timestamps offset from
// now.
func activities(now time.Time) []admin.Activity {
	return []admin.Activity{
		{
			ID:        1,
			Action:    "Approved resident registration",
			Society:   "Green Valley Residency",
			Timestamp: now.Add(-2 * time.Hour),
			Type:      admin.ActivityApproval,
			Details:   "Approved new resident John Doe for Unit 245A",
		},
		{
			ID:        2,
			Action:    "Updated society maintenance schedule",
			Society:   "Sunshine Apartments",
			Timestamp: now.Add(-5 * time.Hour),
			Type:      admin.ActivityUpdate,
			Details:   "Modified weekly cleaning schedule",
		},
		{
			ID:        3,
			Action:    "Resolved parking complaint",
			Society:   "Royal Gardens",
			Timestamp: now.Add(-8 * time.Hour),
			Type:      admin.ActivityApproval,
			Details:   "Mediated parking dispute between residents",
		},
		{
			ID:        4,
			Action:    "Created new announcement",
			Society:   "Green Valley Residency",
			Timestamp: now.Add(-12 * time.Hour),
			Type:      admin.ActivityCreation,
			Details:   "Posted water maintenance notice",
		},
		{
			ID:        5,
			Action:    "System login",
			Society:   "Platform",
			Timestamp: now.Add(-24 * time.Hour),
			Type:      admin.ActivityLogin,
			Details:   "Logged in from mobile device",
		},
	}
}
