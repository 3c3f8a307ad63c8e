package application

import (
	"context"
	"fmt"

	"github.com/bnema/pairup/internal/domain"
	"github.com/stretchr/testify/mock"
)

type memoryMembers struct {
	members []domain.Member
}

func (m *memoryMembers) GetByID(_ context.Context, id domain.MemberID) (domain.Member, error) {
	for _, member := range m.members {
		if member.ID == id {
			return member, nil
		}
	}
	return domain.Member{}, domain.ErrMemberNotFound
}

func (m *memoryMembers) List(context.Context) ([]domain.Member, error) {
	return append([]domain.Member(nil), m.members...), nil
}

func (m *memoryMembers) Save(_ context.Context, member domain.Member) error {
	for i := range m.members {
		if m.members[i].ID == member.ID {
			m.members[i] = member
			return nil
		}
	}
	m.members = append(m.members, member)
	return nil
}

func (m *memoryMembers) Delete(_ context.Context, id domain.MemberID) error {
	for i := range m.members {
		if m.members[i].ID == id {
			m.members = append(m.members[:i], m.members[i+1:]...)
			return nil
		}
	}
	return domain.ErrMemberNotFound
}

type memoryAbsences struct {
	absences []domain.Absence
}

func (m *memoryAbsences) List(context.Context) ([]domain.Absence, error) {
	return append([]domain.Absence(nil), m.absences...), nil
}

func (m *memoryAbsences) Save(_ context.Context, absence domain.Absence) error {
	m.absences = append(m.absences, absence)
	return nil
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func roster(ids ...string) []domain.Member {
	members := make([]domain.Member, 0, len(ids))
	for _, id := range ids {
		members = append(members, domain.Member{ID: domain.MemberID(id), Name: "Name " + id})
	}
	return members
}

// stored mirrors what the session repository hands back: member ids only.
func stored(id string, a, b domain.MemberID) domain.PairSession {
	return domain.PairSession{ID: id, Members: []domain.Member{{ID: a}, {ID: b}}, Status: domain.SessionStatusDone}
}

func mockAnyContext() interface{} {
	return mock.Anything
}

