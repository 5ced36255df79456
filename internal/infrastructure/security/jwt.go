package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ndraey/bookstore-api/internal/domain"
)

// Claim keys shared with the previous implementation's consumers.
const (
	claimUserID = "userId"
	claimEmail  = "email"
	claimRole   = "role"
)

// JWTService issues and validates HS256 session tokens. Tokens are stateless:
// validity is reconstructed entirely from the signature and the embedded
// timestamps, with zero clock-skew tolerance. There is no revocation; a
// leaked token stays valid until it expires.
type JWTService struct {
	secret   []byte
	issuer   string
	audience string
	expiry   time.Duration

	now func() time.Time
}

// NewJWTService fails when the signing secret is absent so a misconfigured
// service never starts. A non-positive expiry falls back to 60 minutes.
func NewJWTService(secret, issuer, audience string, expiry time.Duration) (*JWTService, error) {
	if secret == "" {
		return nil, domain.ErrMissingConfig("JWT_SECRET")
	}
	if expiry <= 0 {
		expiry = 60 * time.Minute
	}
	return &JWTService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		expiry:   expiry,
		now:      time.Now,
	}, nil
}

// Expiry returns the configured validity window.
func (s *JWTService) Expiry() time.Duration { return s.expiry }

// Issue builds and signs a token for the given identity. Extra entries become
// additional string claims; they cannot shadow the identity claims. The role
// is emitted under both the "role" key and the legacy claim key.
func (s *JWTService) Issue(subjectID, email, role string, extra map[string]string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":                  subjectID,
		"jti":                  uuid.NewString(),
		"iat":                  jwt.NewNumericDate(now),
		"iss":                  s.issuer,
		"aud":                  s.audience,
		"exp":                  jwt.NewNumericDate(now.Add(s.expiry)),
		claimUserID:            subjectID,
		claimEmail:             email,
		claimRole:              role,
		domain.LegacyRoleClaim: role,
	}
	for k, v := range extra {
		if _, taken := claims[k]; taken {
			continue
		}
		claims[k] = v
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}
	return signed, nil
}

// Validate verifies signature, issuer, audience and expiry. Every failure
// collapses into the one invalid-token outcome; the cause rides along on the
// error for logs only.
func (s *JWTService) Validate(token string) (domain.ClaimSet, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(0),
	)
	if err != nil {
		return domain.ClaimSet{}, domain.ErrTokenInvalid(err)
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return domain.ClaimSet{}, domain.ErrTokenInvalid(nil)
	}
	return claimSetFromMap(mc), nil
}

// claimSetFromMap lifts the wire-format claim bag into the structured domain
// type. Registered claims covered by named fields are not duplicated into
// Extra; everything else that is a string (firstName, lastName, the legacy
// role key) is.
func claimSetFromMap(mc jwt.MapClaims) domain.ClaimSet {
	cs := domain.ClaimSet{Extra: make(map[string]string)}
	for k, v := range mc {
		str, isString := v.(string)
		switch k {
		case claimUserID:
			cs.SubjectID = str
		case claimEmail:
			cs.Email = str
		case claimRole:
			cs.Role = str
		case "jti":
			cs.TokenID = str
		case "iat":
			if f, ok := v.(float64); ok {
				cs.IssuedAt = time.Unix(int64(f), 0)
			}
		case "sub", "iss", "aud", "exp", "nbf":
			// registered claims, reconstructed elsewhere
		default:
			if isString {
				cs.Extra[k] = str
			}
		}
	}
	return cs
}
