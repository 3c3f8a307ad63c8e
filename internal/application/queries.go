package application

import (
	"time"

	"github.com/bnema/pairup/internal/domain"
	"github.com/bnema/pairup/internal/pairing"
)

// Rotation is the outcome of a persisted rotation.
type Rotation struct {
	Plan     pairing.Plan
	Date     time.Time
	Sessions []domain.PairSession
	Notified bool
}

// HistoryEntry is a stored session with its members resolved against the roster.
type HistoryEntry struct {
	Session domain.PairSession
	// Unknown lists member ids no longer on the roster.
	Unknown []domain.MemberID
}
