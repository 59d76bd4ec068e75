package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the portal.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// Admin: god mode
		{RoleAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},

		// Doctor: works with patients, appointments and diagnoses,
		// and can look up other doctors.
		{RoleDoctor, DomainSys, ResourceDoctor, ActionRead, EffectAllow},
		{RoleDoctor, DomainSys, ResourceDoctor, ActionList, EffectAllow},
		{RoleDoctor, DomainSys, ResourcePatient, ActionCreate, EffectAllow},
		{RoleDoctor, DomainSys, ResourcePatient, ActionRead, EffectAllow},
		{RoleDoctor, DomainSys, ResourcePatient, ActionUpdate, EffectAllow},
		{RoleDoctor, DomainSys, ResourcePatient, ActionDelete, EffectAllow},
		{RoleDoctor, DomainSys, ResourcePatient, ActionList, EffectAllow},
		{RoleDoctor, DomainSys, ResourceAppointment, ActionCreate, EffectAllow},
		{RoleDoctor, DomainSys, ResourceAppointment, ActionRead, EffectAllow},
		{RoleDoctor, DomainSys, ResourceAppointment, ActionUpdate, EffectAllow},
		{RoleDoctor, DomainSys, ResourceAppointment, ActionCancel, EffectAllow},
		{RoleDoctor, DomainSys, ResourceAppointment, ActionList, EffectAllow},
		{RoleDoctor, DomainSys, ResourceDiagnosis, ActionCreate, EffectAllow},
		{RoleDoctor, DomainSys, ResourceDiagnosis, ActionRead, EffectAllow},
		{RoleDoctor, DomainSys, ResourceDiagnosis, ActionList, EffectAllow},

		// Patient: browses doctors, books and cancels own visits.
		{RolePatient, DomainSys, ResourceDoctor, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourceDoctor, ActionList, EffectAllow},
		{RolePatient, DomainSys, ResourceAppointment, ActionCreate, EffectAllow},
		{RolePatient, DomainSys, ResourceAppointment, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourceAppointment, ActionCancel, EffectAllow},
		{RolePatient, DomainSys, ResourceAppointment, ActionList, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own resources
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionUpdate, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourcePatient, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourcePatient, ActionUpdate, EffectAllow},
	}

	allPolicies := append(sysPolicies, userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignPortalRole assigns the Casbin role matching the user's stored role.
// Call this when creating a new user.
func AssignPortalRole(ctx context.Context, auth IAuthorization, userID string, name RoleName) error {
	role, ok := RoleNameToRBACRole[name]
	if !ok {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// RemovePortalRole removes the Casbin role matching the user's stored role.
// Call this when deleting a user.
func RemovePortalRole(ctx context.Context, auth IAuthorization, userID string, name RoleName) error {
	role, ok := RoleNameToRBACRole[name]
	if !ok {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}
