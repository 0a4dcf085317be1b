package domain

import (
	"fmt"
	"strings"
	"unicode"
)

const maxIdentifierLength = 128

// UserID identifies the person being verified. It is an opaque identifier
// minted by the surrounding auth system, not by this service, so it is a
// validated string rather than a UUID.
type UserID string

// ParseUserID validates and returns a UserID.
// Returns an error if the identifier is empty, too long, or contains
// whitespace or control characters.
func ParseUserID(s string) (UserID, error) {
	if err := validateIdentifier("user id", s); err != nil {
		return "", err
	}
	return UserID(s), nil
}

// String returns the string representation of the user ID.
func (u UserID) String() string {
	return string(u)
}

// IsNil returns true if the user ID is empty.
func (u UserID) IsNil() bool {
	return u == ""
}

// SessionID identifies a liveness session issued by the biometric provider.
type SessionID string

// ParseSessionID validates and returns a SessionID.
func ParseSessionID(s string) (SessionID, error) {
	if err := validateIdentifier("session id", s); err != nil {
		return "", err
	}
	return SessionID(s), nil
}

// String returns the string representation of the session ID.
func (s SessionID) String() string {
	return string(s)
}

// IsNil returns true if the session ID is empty.
func (s SessionID) IsNil() bool {
	return s == ""
}

func validateIdentifier(kind, s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%s is required", kind)
	}
	if len(s) > maxIdentifierLength {
		return fmt.Errorf("%s exceeds %d characters", kind, maxIdentifierLength)
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("%s contains whitespace or control characters", kind)
		}
	}
	return nil
}
