package domain

import "testing"

func TestPolicy_UserRole_PassesUserOrAdmin_FailsAdminOnly(t *testing.T) {
	t.Parallel()

	cs := ClaimSet{SubjectID: "u1", Role: "User"}

	if !PolicyUserOrAdmin.Allows(cs) {
		t.Fatalf("expected UserOrAdmin to allow role User")
	}
	if PolicyAdminOnly.Allows(cs) {
		t.Fatalf("expected AdminOnly to deny role User")
	}
}

func TestPolicy_AdminRole_PassesBoth(t *testing.T) {
	t.Parallel()

	cs := ClaimSet{SubjectID: "u1", Role: "Admin"}

	if !PolicyUserOrAdmin.Allows(cs) {
		t.Fatalf("expected UserOrAdmin to allow role Admin")
	}
	if !PolicyAdminOnly.Allows(cs) {
		t.Fatalf("expected AdminOnly to allow role Admin")
	}
}

func TestPolicy_LegacyRoleClaimKey_IsHonored(t *testing.T) {
	t.Parallel()

	// Role carried only under the legacy claim key.
	cs := ClaimSet{
		SubjectID: "u1",
		Extra:     map[string]string{LegacyRoleClaim: "Admin"},
	}

	if !PolicyAdminOnly.Allows(cs) {
		t.Fatalf("expected AdminOnly to honor the legacy role claim key")
	}
}

func TestPolicy_UnknownRole_DeniedByBoth(t *testing.T) {
	t.Parallel()

	cs := ClaimSet{SubjectID: "u1", Role: "Auditor"}

	if PolicyUserOrAdmin.Allows(cs) || PolicyAdminOnly.Allows(cs) {
		t.Fatalf("expected unknown role to be denied by every policy")
	}
}

func TestResolvePolicy(t *testing.T) {
	t.Parallel()

	if _, ok := ResolvePolicy("AdminOnly"); !ok {
		t.Fatalf("expected AdminOnly to resolve")
	}
	if _, ok := ResolvePolicy("UserOrAdmin"); !ok {
		t.Fatalf("expected UserOrAdmin to resolve")
	}
	if _, ok := ResolvePolicy("SuperUser"); ok {
		t.Fatalf("expected unknown policy to not resolve")
	}
}

func TestPolicy_UnknownPolicy_NeverAllows(t *testing.T) {
	t.Parallel()

	cs := ClaimSet{SubjectID: "u1", Role: "Admin"}
	if Policy("SuperUser").Allows(cs) {
		t.Fatalf("expected unknown policy to deny")
	}
}
