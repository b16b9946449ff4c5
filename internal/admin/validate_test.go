package admin

import "testing"

func TestValidateProfileAcceptsCompleteFields(t *testing.T) {
	if errs := ValidateProfile("Sarah Johnson", "sarah.johnson@platform.com", "+1 (555) 123-4567"); errs != nil {
		t.Fatalf("valid profile rejected: %v", errs)
	}
}

func TestValidateProfileRequiresEveryField(t *testing.T) {
	errs := ValidateProfile("  ", "", " ")
	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %v", errs)
	}
	for _, field := range []string{"name", "email", "phone"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("missing error for %s: %v", field, errs)
		}
	}
}

func TestValidateProfileEmailPattern(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"sarah@platform.com", true},
		{"a@b.co", true},
		{"no-at-sign", false},
		{"no-domain@", false},
		{"no-tld@platform", false},
		{"spaces in@platform.com", false},
		{"@platform.com", false},
	}
	for _, tc := range cases {
		errs := ValidateProfile("Name", tc.email, "555")
		if tc.ok && errs != nil {
			t.Fatalf("email %q rejected: %v", tc.email, errs)
		}
		if !tc.ok {
			if _, found := errs["email"]; !found {
				t.Fatalf("email %q should be invalid", tc.email)
			}
		}
	}
}

func TestFieldErrorsMessage(t *testing.T) {
	errs := FieldErrors{"email": "Invalid email format"}
	if got := errs.Error(); got != "email: Invalid email format" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestSocietyAssignmentHelpers(t *testing.T) {
	a := Society{ID: 1, Name: "Green Valley Residency"}
	b := Society{ID: 2, Name: "Sunshine Apartments"}

	assigned := AssignSociety(nil, a)
	assigned = AssignSociety(assigned, b)
	if len(assigned) != 2 {
		t.Fatalf("assigned %d societies, want 2", len(assigned))
	}

	// Duplicate assignment is refused, not deduplicated after the fact.
	assigned = AssignSociety(assigned, Society{ID: 1, Name: "Green Valley Residency"})
	if len(assigned) != 2 {
		t.Fatalf("duplicate society id accepted, got %d entries", len(assigned))
	}

	assigned = RemoveSociety(assigned, 1)
	if len(assigned) != 1 || assigned[0].ID != 2 {
		t.Fatalf("remove left %v", assigned)
	}

	admin := Admin{AssignedSocieties: assigned}
	if !admin.HasSociety(2) || admin.HasSociety(1) {
		t.Fatalf("HasSociety wrong for %v", assigned)
	}
}
