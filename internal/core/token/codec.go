// Package token mints and verifies the signed access tokens that carry a
// subject's identity between requests. Tokens are HS256 JWTs; the server
// keeps no session state, the token is the only identity artifact.
package token

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Decode failure reasons. Callers treat every one of them as "invalid";
// they exist so the gatekeeper can log and count why a token was rejected
// without leaking the reason to the client.
var (
	ErrMalformed   = errors.New("token malformed")
	ErrSignature   = errors.New("token signature invalid")
	ErrExpired     = errors.New("token expired")
	ErrUnsupported = errors.New("token format unsupported")
)

// Reason returns a short label for a Decode error, used as a metric label.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrExpired):
		return "expired"
	case errors.Is(err, ErrSignature):
		return "signature"
	case errors.Is(err, ErrUnsupported):
		return "unsupported"
	default:
		return "malformed"
	}
}

// Claims is the verified payload of an access token.
type Claims struct {
	UserID    string
	Name      string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type jwtClaims struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Roles string `json:"roles"`
	jwt.RegisteredClaims
}

const defaultTTL = time.Hour

// Codec encodes and decodes access tokens with a fixed symmetric key.
// The key is derived once from configuration, so tokens stay valid across
// restarts, and is safe for concurrent use.
type Codec struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewCodec builds a Codec from the base64-encoded signing secret and token
// lifetime. An undecodable secret is a startup error, not a per-request one.
func NewCodec(secretBase64 string, ttl time.Duration) (*Codec, error) {
	key, err := base64.StdEncoding.DecodeString(secretBase64)
	if err != nil {
		return nil, fmt.Errorf("decode signing secret: %w", err)
	}
	if len(key) == 0 {
		return nil, errors.New("signing secret is empty")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{key: key, ttl: ttl, now: time.Now}, nil
}

// Encode mints a signed token for the subject. Expiry is exactly issued-at
// plus the configured lifetime.
func (c *Codec) Encode(userID, name, role string) (string, error) {
	issuedAt := c.now()
	claims := jwtClaims{
		ID:    userID,
		Name:  name,
		Roles: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
}

// Decode verifies the signature and expiry of a token and returns its
// claims. A token is invalid from the expiry instant onward; there is no
// clock-skew leeway.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	var claims jwtClaims
	tkn, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrUnsupported
		}
		return c.key, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		return nil, classify(err)
	}
	if !tkn.Valid {
		return nil, ErrSignature
	}

	out := &Claims{
		UserID: claims.Subject,
		Name:   claims.Name,
		Role:   claims.Roles,
	}
	if out.UserID == "" {
		out.UserID = claims.ID
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrSignature
	case errors.Is(err, ErrUnsupported), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrUnsupported
	default:
		return ErrMalformed
	}
}
