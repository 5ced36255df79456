package domain

// Policy is a named boolean predicate over a claim set gating a protected
// operation. Policies are a fixed set resolved by name where a route is
// registered; evaluation is pure.
type Policy string

const (
	PolicyAdminOnly   Policy = "AdminOnly"
	PolicyUserOrAdmin Policy = "UserOrAdmin"
)

var policies = map[Policy]func(ClaimSet) bool{
	PolicyAdminOnly: func(c ClaimSet) bool {
		return c.HasRole(string(RoleAdmin))
	},
	PolicyUserOrAdmin: func(c ClaimSet) bool {
		return c.HasRole(string(RoleUser)) || c.HasRole(string(RoleAdmin))
	},
}

// Allows evaluates the policy against a validated claim set. Unknown policies
// never allow.
func (p Policy) Allows(c ClaimSet) bool {
	pred, ok := policies[p]
	return ok && pred(c)
}

// ResolvePolicy looks a policy up by name.
func ResolvePolicy(name string) (Policy, bool) {
	p := Policy(name)
	_, ok := policies[p]
	return p, ok
}
