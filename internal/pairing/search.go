package pairing

import (
	"sort"
	"strings"

	"github.com/bnema/pairup/internal/domain"
)

const stateKeySeparator = "|"

type SearchOptions struct {
	// MaxExpansions caps the number of explored pair commitments. Zero or less
	// means no cap. Once the cap is hit, open states are completed greedily with
	// the lowest-count remaining candidate, and the whole result is replaced by a
	// greedy matching of the full pool when that scores no worse.
	MaxExpansions int
}

// Result is the best matching found by Search.
type Result struct {
	Pairs []domain.Pair
	Score int
	// Exhaustive is false when MaxExpansions cut the search short, in which case
	// Pairs is a complete matching that may not be optimal.
	Exhaustive bool
	Expansions int
}

type candidate struct {
	pair  domain.Pair
	key   string
	count int
}

// completion is the best way to finish a state: the candidate indexes to commit, in
// order, and the repetition score they add.
type completion struct {
	picks []int
	score int
}

type searcher struct {
	candidates    []candidate
	memo          map[string]completion
	maxExpansions int
	expansions    int
	truncated     bool
}

// Search picks disjoint pairs from candidates minimizing the sum of their
// historical counts. Ties go to the first minimal branch in candidate order.
// Every call owns its memo; nothing is shared between calls.
func Search(candidates []domain.Pair, index CountIndex, opts SearchOptions) Result {
	s := &searcher{
		candidates:    make([]candidate, len(candidates)),
		memo:          make(map[string]completion),
		maxExpansions: opts.MaxExpansions,
	}

	remaining := make([]int, len(candidates))
	for i, pair := range candidates {
		key := KeyFor(pair)
		s.candidates[i] = candidate{pair: pair, key: key, count: index.Count(key)}
		remaining[i] = i
	}

	best := s.best(remaining)
	if s.truncated {
		if greedy := s.greedy(remaining); greedy.score <= best.score {
			best = greedy
		}
	}

	pairs := make([]domain.Pair, 0, len(best.picks))
	for _, i := range best.picks {
		pairs = append(pairs, s.candidates[i].pair)
	}

	return Result{
		Pairs:      pairs,
		Score:      best.score,
		Exhaustive: !s.truncated,
		Expansions: s.expansions,
	}
}

// best returns the optimal completion of the state described by remaining. Each
// level commits one pair, so recursion depth never exceeds half the pool size.
func (s *searcher) best(remaining []int) completion {
	if len(remaining) == 0 {
		return completion{}
	}

	key := s.stateKey(remaining)
	if cached, ok := s.memo[key]; ok {
		return cached
	}
	if s.budgetSpent() {
		s.truncated = true
		return s.greedy(remaining)
	}

	var result completion
	found := false
	for _, i := range remaining {
		if found && s.budgetSpent() {
			s.truncated = true
			break
		}
		s.expansions++

		rest := s.best(s.without(remaining, i))
		score := s.candidates[i].count + rest.score
		if !found || score < result.score {
			picks := make([]int, 0, len(rest.picks)+1)
			picks = append(picks, i)
			picks = append(picks, rest.picks...)
			result = completion{picks: picks, score: score}
			found = true
		}
	}

	s.memo[key] = result
	return result
}

// greedy repeatedly commits the lowest-count candidate left, ties in candidate
// order. It does not count as expansions.
func (s *searcher) greedy(remaining []int) completion {
	var result completion
	for len(remaining) > 0 {
		pick := remaining[0]
		for _, i := range remaining[1:] {
			if s.candidates[i].count < s.candidates[pick].count {
				pick = i
			}
		}
		result.picks = append(result.picks, pick)
		result.score += s.candidates[pick].count
		remaining = s.without(remaining, pick)
	}
	return result
}

func (s *searcher) budgetSpent() bool {
	return s.maxExpansions > 0 && s.expansions >= s.maxExpansions
}

// without drops the committed candidate and every candidate sharing a member with it.
func (s *searcher) without(remaining []int, committed int) []int {
	pair := s.candidates[committed].pair
	next := make([]int, 0, len(remaining))
	for _, i := range remaining {
		if s.candidates[i].pair.Shares(pair) {
			continue
		}
		next = append(next, i)
	}
	return next
}

func (s *searcher) stateKey(remaining []int) string {
	keys := make([]string, len(remaining))
	for n, i := range remaining {
		keys[n] = s.candidates[i].key
	}
	sort.Strings(keys)
	return strings.Join(keys, stateKeySeparator)
}
