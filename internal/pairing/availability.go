package pairing

import (
	"time"

	"github.com/bnema/pairup/internal/domain"
)

// Available returns the members without an absence covering now, in roster order.
func Available(members []domain.Member, absences []domain.Absence, now time.Time) []domain.Member {
	available, _ := Partition(members, absences, now)
	return available
}

// Partition splits the roster into available and absent members, both in roster order.
func Partition(members []domain.Member, absences []domain.Absence, now time.Time) ([]domain.Member, []domain.Member) {
	away := make(map[domain.MemberID]struct{}, len(absences))
	for _, absence := range absences {
		if absence.Covers(now) {
			away[absence.MemberID] = struct{}{}
		}
	}

	available := make([]domain.Member, 0, len(members))
	absent := make([]domain.Member, 0, len(away))
	for _, member := range members {
		if _, ok := away[member.ID]; ok {
			absent = append(absent, member)
			continue
		}
		available = append(available, member)
	}

	return available, absent
}
