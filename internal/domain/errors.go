package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMemberNotFound        = errors.New("member not found")
	ErrDuplicateMember       = errors.New("duplicate member")
	ErrInvalidMemberID       = errors.New("invalid member id")
	ErrSecretNotFound        = errors.New("secret not found")
	ErrNotifierNotConfigured = errors.New("notifier not configured")
)

// MalformedSessionError reports a historical session that does not pair exactly two members.
type MalformedSessionError struct {
	SessionID   string
	MemberCount int
}

func (e *MalformedSessionError) Error() string {
	return fmt.Sprintf("malformed pair session %q: expected 2 members, got %d", e.SessionID, e.MemberCount)
}
