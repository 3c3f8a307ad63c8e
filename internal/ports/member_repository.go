package ports

import (
	"context"

	"github.com/bnema/pairup/internal/domain"
)

type MemberRepository interface {
	GetByID(ctx context.Context, id domain.MemberID) (domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	Save(ctx context.Context, member domain.Member) error
	Delete(ctx context.Context, id domain.MemberID) error
}

type AbsenceRepository interface {
	List(ctx context.Context) ([]domain.Absence, error)
	Save(ctx context.Context, absence domain.Absence) error
}

type SessionRepository interface {
	List(ctx context.Context) ([]domain.PairSession, error)
	SaveAll(ctx context.Context, sessions []domain.PairSession) error
}
