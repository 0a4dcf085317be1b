// Package sessiontoken mints and validates the short-lived tokens that bind
// a browser liveness capture to the session created for it. The token proves
// the capture client received the session from us and not from another user.
package sessiontoken

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"idverify/pkg/domain"
	dErrors "idverify/pkg/domain-errors"
)

const issuerName = "idverify"

// Claims are the JWT claims carried by a liveness session token.
type Claims struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// Issuer signs and validates session tokens.
type Issuer struct {
	signingKey []byte
	ttl        time.Duration
}

// NewIssuer creates an issuer with the given HMAC key and token lifetime.
func NewIssuer(signingKey string, ttl time.Duration) *Issuer {
	return &Issuer{
		signingKey: []byte(signingKey),
		ttl:        ttl,
	}
}

// Issue signs a token binding the session to the user it was created for.
func (i *Issuer) Issue(sessionID domain.SessionID, userID domain.UserID, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:    userID.String(),
		SessionID: sessionID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuerName,
			ID:        uuid.NewString(),
		},
	})

	signed, err := token.SignedString(i.signingKey)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Validate parses and verifies a session token.
func (i *Issuer) Validate(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return i.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "session token has expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid session token")
	}
	if !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid session token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid session token claims")
	}
	return claims, nil
}
