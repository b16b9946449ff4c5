package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"superadmin/internal/admin"
)

func TestDefaultDatasetShape(t *testing.T) {
	now := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	ds := Default(now)

	if len(ds.Societies) != 8 {
		t.Fatalf("societies = %d, want 8", len(ds.Societies))
	}
	if len(ds.Admins) != 6 {
		t.Fatalf("admins = %d, want 6", len(ds.Admins))
	}
	if err := validate(ds); err != nil {
		t.Fatalf("built-in dataset invalid: %v", err)
	}

	p := admin.Project(ds.Admins, admin.Query{Search: "sarah", Status: admin.StatusAll, Page: 1})
	if p.TotalCount != 1 || p.Items[0].Name != "Sarah Johnson" {
		t.Fatalf("searching sarah over the seed must match exactly Sarah Johnson, got %d", p.TotalCount)
	}

	for _, a := range ds.Admins {
		if a.CreatedAt.IsZero() {
			t.Fatalf("admin %s missing createdAt", a.Name)
		}
		if !a.LastActivity.Before(now.Add(time.Second)) {
			t.Fatalf("admin %s lastActivity in the future", a.Name)
		}
	}
	if got := ds.Admins[3].Status; got != admin.StatusPending {
		t.Fatalf("David Kumar should seed as pending, got %s", got)
	}
}

func TestLoadFallsBackWhenFileMissing(t *testing.T) {
	now := time.Now()
	ds, err := Load(filepath.Join(t.TempDir(), "seed.yaml"), now)
	if err != nil {
		t.Fatalf("load with missing file: %v", err)
	}
	if len(ds.Admins) != 6 {
		t.Fatalf("fallback admins = %d, want built-in 6", len(ds.Admins))
	}
}

func TestLoadParsesOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	doc := strings.TrimSpace(`
societies:
  - id: 1
    name: Test Towers
    unit_count: 10
    location: Testville
admins:
  - id: 1
    name: Only Admin
    email: only@platform.com
    phone: "+1 (555) 111-2222"
    status: active
    assigned_societies:
      - id: 1
        name: Test Towers
        unit_count: 10
        location: Testville
    last_activity: 2025-04-01T10:00:00Z
    created_at: 2025-01-01T09:00:00Z
    login_count: 5
    tickets_resolved: 2
`)
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	ds, err := Load(path, time.Now())
	if err != nil {
		t.Fatalf("load override: %v", err)
	}
	if len(ds.Admins) != 1 || ds.Admins[0].Name != "Only Admin" {
		t.Fatalf("override not applied: %+v", ds.Admins)
	}
	if ds.Admins[0].Status != admin.StatusActive {
		t.Fatalf("status = %s", ds.Admins[0].Status)
	}
	if len(ds.Admins[0].AssignedSocieties) != 1 {
		t.Fatalf("assigned societies = %d", len(ds.Admins[0].AssignedSocieties))
	}
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	if err := os.WriteFile(path, []byte("admins: [not closed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, time.Now()); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	ds := Dataset{Admins: []admin.Admin{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}}}
	if err := validate(ds); err == nil {
		t.Fatalf("duplicate admin ids must be rejected")
	}

	ds = Dataset{Societies: []admin.Society{{ID: 2, Name: "X"}, {ID: 2, Name: "Y"}}}
	if err := validate(ds); err == nil {
		t.Fatalf("duplicate society ids must be rejected")
	}

	ds = Dataset{Admins: []admin.Admin{{
		ID:   1,
		Name: "A",
		AssignedSocieties: []admin.Society{
			{ID: 3, Name: "X"},
			{ID: 3, Name: "X"},
		},
	}}}
	if err := validate(ds); err == nil {
		t.Fatalf("duplicate society assignment must be rejected")
	}
}

func TestValidateRejectsNonPositiveIDs(t *testing.T) {
	if err := validate(Dataset{Admins: []admin.Admin{{ID: 0, Name: "A"}}}); err == nil {
		t.Fatalf("zero admin id must be rejected")
	}
	if err := validate(Dataset{Societies: []admin.Society{{ID: -1, Name: "S"}}}); err == nil {
		t.Fatalf("negative society id must be rejected")
	}
}
