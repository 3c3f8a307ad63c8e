package domain

import "time"

type SessionStatus string

const (
	SessionStatusPlanned   SessionStatus = "planned"
	SessionStatusDone      SessionStatus = "done"
	SessionStatusCancelled SessionStatus = "cancelled"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionStatusPlanned, SessionStatusDone, SessionStatusCancelled:
		return true
	default:
		return false
	}
}

// PairSession is a recorded pairing. Valid sessions carry exactly two members.
type PairSession struct {
	ID         string
	Members    []Member
	Date       time.Time
	ProjectIDs []string
	Status     SessionStatus
}

// CountsAsHistory reports whether the session should weigh on future rotations at now.
func (s PairSession) CountsAsHistory(now time.Time) bool {
	if s.Status == SessionStatusCancelled {
		return false
	}

	return !s.Date.After(now)
}
