package pairing

import (
	"errors"
	"fmt"
	"time"

	"github.com/bnema/pairup/internal/domain"
)

const (
	DefaultMaxPoolSize   = 24
	DefaultMaxExpansions = 2_000_000
)

var ErrPoolTooLarge = errors.New("pool too large")

// Options bound the search. Zero or negative values disable a limit.
type Options struct {
	MaxPoolSize   int
	MaxExpansions int
}

func DefaultOptions() Options {
	return Options{MaxPoolSize: DefaultMaxPoolSize, MaxExpansions: DefaultMaxExpansions}
}

type Optimizer struct {
	opts Options
}

func NewOptimizer(opts Options) *Optimizer {
	return &Optimizer{opts: opts}
}

type Input struct {
	Roster   []domain.Member
	Absences []domain.Absence
	History  []domain.PairSession
	Now      time.Time
}

type Plan struct {
	Pairs []domain.Pair
	// Unpaired holds the member left over from an odd pool.
	Unpaired   []domain.Member
	Absent     []domain.Member
	// Repeats[i] is how often Pairs[i] already met in the history.
	Repeats    []int
	Score      int
	Exhaustive bool
	Expansions int
}

// Plan filters out absent members and pairs the rest.
func (o *Optimizer) Plan(in Input) (Plan, error) {
	available, absent := Partition(in.Roster, in.Absences, in.Now)

	result, index, err := o.pairs(available, in.History)
	if err != nil {
		return Plan{}, err
	}

	repeats := make([]int, len(result.Pairs))
	for i, pair := range result.Pairs {
		repeats[i] = index.CountPair(pair)
	}

	return Plan{
		Pairs:      result.Pairs,
		Unpaired:   unpaired(available, result.Pairs),
		Absent:     absent,
		Repeats:    repeats,
		Score:      result.Score,
		Exhaustive: result.Exhaustive,
		Expansions: result.Expansions,
	}, nil
}

// Pairs runs the search over members without any availability filtering.
func (o *Optimizer) Pairs(members []domain.Member, history []domain.PairSession) (Result, error) {
	result, _, err := o.pairs(members, history)
	return result, err
}

func (o *Optimizer) pairs(members []domain.Member, history []domain.PairSession) (Result, CountIndex, error) {
	if err := checkUniqueMembers(members); err != nil {
		return Result{}, CountIndex{}, err
	}
	if o.opts.MaxPoolSize > 0 && len(members) > o.opts.MaxPoolSize {
		return Result{}, CountIndex{}, fmt.Errorf("%w: %d members (max %d)", ErrPoolTooLarge, len(members), o.opts.MaxPoolSize)
	}

	index, err := BuildCountIndex(history)
	if err != nil {
		return Result{}, CountIndex{}, fmt.Errorf("index pair history: %w", err)
	}

	return Search(Candidates(members), index, SearchOptions{MaxExpansions: o.opts.MaxExpansions}), index, nil
}

func unpaired(members []domain.Member, pairs []domain.Pair) []domain.Member {
	paired := make(map[domain.MemberID]struct{}, len(pairs)*2)
	for _, pair := range pairs {
		paired[pair.First.ID] = struct{}{}
		paired[pair.Second.ID] = struct{}{}
	}

	left := make([]domain.Member, 0, 1)
	for _, member := range members {
		if _, ok := paired[member.ID]; !ok {
			left = append(left, member)
		}
	}
	return left
}
