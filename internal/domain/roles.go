package domain

type Role string

const (
	// User can manage books but not delete them
	RoleUser Role = "User"
	// Admin has full access, including book deletion
	RoleAdmin Role = "Admin"
)

// The role set is open: registration accepts any role string up to the column
// limit. These constants are the roles the access policies know about.
