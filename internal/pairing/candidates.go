package pairing

import (
	"fmt"

	"github.com/bnema/pairup/internal/domain"
)

// Candidates returns every unordered pair of members as (members[i], members[j])
// with i < j, ordered by i then j.
func Candidates(members []domain.Member) []domain.Pair {
	if len(members) < 2 {
		return []domain.Pair{}
	}

	pairs := make([]domain.Pair, 0, len(members)*(len(members)-1)/2)
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			pairs = append(pairs, domain.Pair{First: members[i], Second: members[j]})
		}
	}

	return pairs
}

func checkUniqueMembers(members []domain.Member) error {
	seen := make(map[domain.MemberID]struct{}, len(members))
	for _, member := range members {
		if err := member.ID.Validate(); err != nil {
			return err
		}
		if _, ok := seen[member.ID]; ok {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateMember, member.ID)
		}
		seen[member.ID] = struct{}{}
	}

	return nil
}
