package domain

import (
	"errors"
	"time"
)

type Absence struct {
	ID       string
	MemberID MemberID
	Start    time.Time
	End      time.Time
}

// Covers reports whether now falls inside the absence window, inclusive on both ends.
// A window with a missing bound never covers anything.
func (a Absence) Covers(now time.Time) bool {
	if a.Start.IsZero() || a.End.IsZero() {
		return false
	}

	return !now.Before(a.Start) && !now.After(a.End)
}

func (a Absence) Validate() error {
	if a.MemberID == "" {
		return errors.New("member id is required")
	}
	if a.Start.IsZero() || a.End.IsZero() {
		return errors.New("start and end are required")
	}
	if a.End.Before(a.Start) {
		return errors.New("end must not be before start")
	}

	return nil
}
