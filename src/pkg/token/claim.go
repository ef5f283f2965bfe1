package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claim is the authenticated context carried by every protected request.
type Claim struct {
	Metadata Metadata `json:"metadata"`
	jwt.RegisteredClaims
}

type Metadata struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
}

var ErrInvalidToken = errors.New("invalid or expired token")

// Issue signs an HS256 token for the user and returns it with its session id (jti).
func Issue(secret, issuer string, ttl time.Duration, meta Metadata) (signed string, claim *Claim, err error) {
	now := time.Now().UTC()
	claim = &Claim{
		Metadata: meta,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   meta.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claim).SignedString([]byte(secret))
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claim, nil
}

// Parse verifies signature and expiry.
func Parse(secret, raw string) (*Claim, error) {
	claim := &Claim{}
	tkn, err := jwt.ParseWithClaims(raw, claim, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	if claim.Metadata.UserID == "" || claim.ID == "" {
		return nil, ErrInvalidToken
	}
	return claim, nil
}

// SessionKey is the Redis key that keeps a token's session alive until sign-out or expiry.
func SessionKey(jti string) string {
	return "AUTH:SESSION:" + jti
}
