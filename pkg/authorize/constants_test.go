package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		// Valid domains
		{"sys domain", DomainSys, true},
		{"wildcard domain", WildcardDomain, true},
		{"valid user domain", Domain("user:550e8400-e29b-41d4-a716-446655440000"), true},

		// Invalid domains
		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"user without uuid", Domain("user:"), false},
		{"user with invalid uuid", Domain("user:not-a-uuid"), false},
		{"unknown prefix", Domain("clinic:550e8400-e29b-41d4-a716-446655440000"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestUserDomain(t *testing.T) {
	userID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("user:550e8400-e29b-41d4-a716-446655440000")

	result := UserDomain(userID)
	if result != expected {
		t.Errorf("UserDomain(%q) = %q, want %q", userID, result, expected)
	}
}

func TestKnownActions(t *testing.T) {
	// Verify all expected actions are in the known map
	expectedActions := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage, ActionExecute, ActionCancel,
		ActionGrant, ActionRevoke,
	}

	for _, action := range expectedActions {
		if _, ok := KnownActions[action]; !ok {
			t.Errorf("Expected action %q to be in KnownActions", action)
		}
	}
}

func TestKnownResources(t *testing.T) {
	// Verify all expected resources are in the known map
	expectedResources := []Resource{
		ResourceUser, ResourceAuthSession,
		ResourceDoctor, ResourcePatient, ResourceAppointment, ResourceDiagnosis,
		ResourceSystem, ResourceAudit, ResourceRBAC,
	}

	for _, resource := range expectedResources {
		if _, ok := KnownResources[resource]; !ok {
			t.Errorf("Expected resource %q to be in KnownResources", resource)
		}
	}
}

func TestKnownRoles(t *testing.T) {
	// Verify all expected roles are in the known map
	expectedRoles := []Role{
		RoleAdmin, RoleDoctor, RolePatient, RoleUserSelf,
	}

	for _, role := range expectedRoles {
		if _, ok := KnownRoles[role]; !ok {
			t.Errorf("Expected role %q to be in KnownRoles", role)
		}
	}
}

func TestParseRoleName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RoleName
		wantErr bool
	}{
		{"exact admin", "ADMIN", RoleNameAdmin, false},
		{"lowercase doctor", "doctor", RoleNameDoctor, false},
		{"mixed case patient", "Patient", RoleNamePatient, false},
		{"spring style prefix", "ROLE_DOCTOR", RoleNameDoctor, false},
		{"lowercase prefixed", "role_admin", RoleNameAdmin, false},
		{"surrounding whitespace", "  patient  ", RoleNamePatient, false},
		{"empty", "", "", true},
		{"unknown", "nurse", "", true},
		{"prefix only", "ROLE_", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRoleName(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseRoleName(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseRoleName(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRoleName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoleNameToRBACRole(t *testing.T) {
	for _, rn := range []RoleName{RoleNameAdmin, RoleNameDoctor, RoleNamePatient} {
		role, ok := RoleNameToRBACRole[rn]
		if !ok {
			t.Errorf("Expected role name %q to map to a Casbin role", rn)
			continue
		}
		if _, ok := KnownRoles[role]; !ok {
			t.Errorf("Mapped role %q for %q is not in KnownRoles", role, rn)
		}
	}
}
