package domain

import (
	"fmt"
	"strings"
)

type MemberID string

// PairKeySeparator joins the two sorted member ids of a pair key. Member ids must not contain it.
const PairKeySeparator = ":"

type Member struct {
	ID    MemberID
	Name  string
	Slack string
}

func (m Member) Validate() error {
	if strings.TrimSpace(string(m.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if err := m.ID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name is required")
	}

	return nil
}

// Validate rejects ids that cannot take part in a pair key.
func (id MemberID) Validate() error {
	if strings.TrimSpace(string(id)) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidMemberID)
	}
	if strings.Contains(string(id), PairKeySeparator) {
		return fmt.Errorf("%w: %q must not contain %q", ErrInvalidMemberID, id, PairKeySeparator)
	}

	return nil
}

// DisplayName falls back to the id when the roster entry has no name.
func (m Member) DisplayName() string {
	if name := strings.TrimSpace(m.Name); name != "" {
		return name
	}
	return string(m.ID)
}
