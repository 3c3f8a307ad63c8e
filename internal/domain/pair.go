package domain

// Pair holds two members in the order they were enumerated from the roster.
type Pair struct {
	First  Member
	Second Member
}

func (p Pair) Members() []Member {
	return []Member{p.First, p.Second}
}

// Shares reports whether the two pairs have a member in common.
func (p Pair) Shares(other Pair) bool {
	return p.First.ID == other.First.ID ||
		p.First.ID == other.Second.ID ||
		p.Second.ID == other.First.ID ||
		p.Second.ID == other.Second.ID
}
