package pairing

import (
	"github.com/bnema/pairup/internal/domain"
)

// KeyOf returns the canonical key of the unordered pair {a, b}.
func KeyOf(a, b domain.MemberID) string {
	if b < a {
		a, b = b, a
	}
	return string(a) + domain.PairKeySeparator + string(b)
}

// KeyFor returns the canonical key of p.
func KeyFor(p domain.Pair) string {
	return KeyOf(p.First.ID, p.Second.ID)
}

// SessionKey returns the canonical key of a historical session.
func SessionKey(session domain.PairSession) (string, error) {
	if len(session.Members) != 2 {
		return "", &domain.MalformedSessionError{SessionID: session.ID, MemberCount: len(session.Members)}
	}
	return KeyOf(session.Members[0].ID, session.Members[1].ID), nil
}

// CountIndex maps pair keys to the number of times the pair occurred in history.
// It is read-only once built.
type CountIndex struct {
	counts map[string]int
}

// BuildCountIndex counts every session's pair. A session without exactly two
// members aborts the build with a *domain.MalformedSessionError.
func BuildCountIndex(sessions []domain.PairSession) (CountIndex, error) {
	counts := make(map[string]int, len(sessions))
	for _, session := range sessions {
		key, err := SessionKey(session)
		if err != nil {
			return CountIndex{}, err
		}
		counts[key]++
	}

	return CountIndex{counts: counts}, nil
}

func (c CountIndex) Count(key string) int {
	return c.counts[key]
}

func (c CountIndex) CountPair(p domain.Pair) int {
	return c.counts[KeyFor(p)]
}

// Len is the number of distinct pairs seen in history.
func (c CountIndex) Len() int {
	return len(c.counts)
}
