package ports

import (
	"context"

	"github.com/bnema/pairup/internal/domain"
)

// Announcement is what a rotation publishes to the team.
type Announcement struct {
	Pairs    []domain.Pair
	Unpaired []domain.Member
}

type Notifier interface {
	Announce(ctx context.Context, announcement Announcement) error
}
