// Package token issues and verifies the signed bearer tokens that represent
// a logged-in identity. The service is stateless: there is no revocation
// list, tokens die by expiry or client-side discard.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// purposeVerifyEmail tags tokens minted for the email-verification link so
// they cannot double as login tokens.
const purposeVerifyEmail = "email_verification"

var ErrMissingSecret = errors.New("token: signing secret is not configured")

// Claims is the identity payload carried by a login token.
type Claims struct {
	UserID   string
	Role     string
	FullName string
}

// Result is the outcome of a verification. Expired is true only when expiry
// was the sole reason the token is invalid; a tampered token reports
// Valid=false, Expired=false.
type Result struct {
	Valid   bool
	Expired bool
	Claims  Claims
}

// Service signs and verifies HS256 tokens with a server-held secret.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New constructs a Service. An empty secret is a configuration error; the
// caller must treat it as fatal at startup.
func New(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// SetNow overrides the service clock. Intended for use in tests only.
func (s *Service) SetNow(now func() time.Time) {
	s.now = now
}

// Issue signs a login token for the given identity. Every token gets a
// unique jti for traceability.
func (s *Service) Issue(c Claims) (string, error) {
	now := s.now().UTC()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   c.UserID,
		"user_role": c.Role,
		"user_name": c.FullName,
		"jti":       uuid.NewString(),
		"iat":       now.Unix(),
		"exp":       now.Add(s.ttl).Unix(),
	})
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry. It fails closed: any parse failure
// yields Valid=false and never panics past this boundary.
func (s *Service) Verify(raw string) Result {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, s.keyFunc,
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid {
		return Result{Expired: errors.Is(err, jwt.ErrTokenExpired)}
	}
	if purpose, _ := claims["purpose"].(string); purpose != "" {
		// A verification-link token presented as a login token.
		return Result{}
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["user_role"].(string)
	name, _ := claims["user_name"].(string)
	return Result{
		Valid:  true,
		Claims: Claims{UserID: userID, Role: role, FullName: name},
	}
}

// IssueVerifyEmail signs a single-purpose token embedded in the
// email-verification link.
func (s *Service) IssueVerifyEmail(email, fullName string) (string, error) {
	now := s.now().UTC()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email":     email,
		"full_name": fullName,
		"purpose":   purposeVerifyEmail,
		"jti":       uuid.NewString(),
		"iat":       now.Unix(),
		"exp":       now.Add(24 * time.Hour).Unix(),
	})
	return t.SignedString(s.secret)
}

// VerifyEmailToken validates a verification-link token and returns the email
// it was minted for.
func (s *Service) VerifyEmailToken(raw string) (string, Result) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, s.keyFunc,
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid {
		return "", Result{Expired: errors.Is(err, jwt.ErrTokenExpired)}
	}
	if purpose, _ := claims["purpose"].(string); purpose != purposeVerifyEmail {
		return "", Result{}
	}
	email, _ := claims["email"].(string)
	return email, Result{Valid: true}
}

func (s *Service) keyFunc(t *jwt.Token) (interface{}, error) {
	if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return s.secret, nil
}
