package domain

import "time"

// LegacyRoleClaim is the role claim type the previous implementation emitted
// alongside the short "role" key. Issued tokens still carry the role under
// both keys so older consumers keep working; the duplication exists only on
// the wire, never in this struct.
const LegacyRoleClaim = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"

// ClaimSet is the decoded, verified contents of a session token.
type ClaimSet struct {
	SubjectID string
	Email     string
	Role      string
	TokenID   string
	IssuedAt  time.Time

	// Extra holds any additional string claims (firstName, lastName, the
	// legacy role key, ...) exactly as they appeared in the token.
	Extra map[string]string
}

// HasRole reports whether the claim set carries the given role, checking the
// primary role claim and the legacy claim key.
func (c ClaimSet) HasRole(role string) bool {
	if c.Role == role {
		return true
	}
	return c.Extra[LegacyRoleClaim] == role
}
