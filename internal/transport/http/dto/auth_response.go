package dto

import (
	"sort"
	"time"

	"github.com/ndraey/bookstore-api/internal/application/auth"
	"github.com/ndraey/bookstore-api/internal/domain"
)

// -------- Core auth --------

type AuthData struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func NewAuthData(res auth.AuthResult) AuthData {
	return AuthData{
		Token:     res.Token,
		Email:     res.Email,
		FirstName: res.FirstName,
		LastName:  res.LastName,
		Role:      res.Role,
		ExpiresAt: res.ExpiresAt,
	}
}

type ProfileClaim struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type ProfileData struct {
	UserID    string         `json:"userId"`
	Email     string         `json:"email"`
	Role      string         `json:"role"`
	FirstName string         `json:"firstName,omitempty"`
	LastName  string         `json:"lastName,omitempty"`
	Claims    []ProfileClaim `json:"claims"`
}

// NewProfileData projects a validated claim set for the profile endpoint.
// Extra claims are listed in a stable order.
func NewProfileData(cs domain.ClaimSet) ProfileData {
	p := ProfileData{
		UserID:    cs.SubjectID,
		Email:     cs.Email,
		Role:      cs.Role,
		FirstName: cs.Extra["firstName"],
		LastName:  cs.Extra["lastName"],
	}

	p.Claims = append(p.Claims,
		ProfileClaim{Type: "userId", Value: cs.SubjectID},
		ProfileClaim{Type: "email", Value: cs.Email},
		ProfileClaim{Type: "role", Value: cs.Role},
	)

	keys := make([]string, 0, len(cs.Extra))
	for k := range cs.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p.Claims = append(p.Claims, ProfileClaim{Type: k, Value: cs.Extra[k]})
	}

	return p
}
