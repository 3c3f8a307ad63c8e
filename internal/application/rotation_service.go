package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bnema/pairup/internal/domain"
	"github.com/bnema/pairup/internal/pairing"
	"github.com/bnema/pairup/internal/ports"
)

type Repositories struct {
	Members  ports.MemberRepository
	Absences ports.AbsenceRepository
	Sessions ports.SessionRepository
}

// RotationService loads the roster and history, asks the optimizer for pairs
// and records the outcome.
type RotationService struct {
	repos     Repositories
	optimizer *pairing.Optimizer
	notifier  ports.Notifier
	clock     ports.Clock
	logger    *zap.Logger
	newID     func() string
}

// NewRotationService accepts a nil notifier; rotations then cannot announce.
func NewRotationService(repos Repositories, optimizer *pairing.Optimizer, notifier ports.Notifier, clock ports.Clock, logger *zap.Logger) *RotationService {
	if optimizer == nil {
		optimizer = pairing.NewOptimizer(pairing.DefaultOptions())
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RotationService{
		repos:     repos,
		optimizer: optimizer,
		notifier:  notifier,
		clock:     clock,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

func (s *RotationService) CanNotify() bool {
	return s.notifier != nil
}

// Plan computes the next rotation without side effects.
func (s *RotationService) Plan(ctx context.Context) (pairing.Plan, error) {
	return s.plan(ctx, s.clock.Now())
}

func (s *RotationService) plan(ctx context.Context, now time.Time) (pairing.Plan, error) {
	roster, err := s.repos.Members.List(ctx)
	if err != nil {
		return pairing.Plan{}, fmt.Errorf("list members: %w", err)
	}

	absences, err := s.repos.Absences.List(ctx)
	if err != nil {
		return pairing.Plan{}, fmt.Errorf("list absences: %w", err)
	}

	sessions, err := s.repos.Sessions.List(ctx)
	if err != nil {
		return pairing.Plan{}, fmt.Errorf("list sessions: %w", err)
	}

	// Sessions are stored per calendar day, so all of today counts.
	cutoff := sessionDay(now).Add(24*time.Hour - time.Nanosecond)
	history := make([]domain.PairSession, 0, len(sessions))
	for _, session := range sessions {
		if session.CountsAsHistory(cutoff) {
			history = append(history, session)
		}
	}

	plan, err := s.optimizer.Plan(pairing.Input{
		Roster:   roster,
		Absences: absences,
		History:  history,
		Now:      now,
	})
	if err != nil {
		return pairing.Plan{}, fmt.Errorf("plan pairs: %w", err)
	}

	s.logger.Debug("planned rotation",
		zap.Int("roster", len(roster)),
		zap.Int("absent", len(plan.Absent)),
		zap.Int("history", len(history)),
		zap.Int("pairs", len(plan.Pairs)),
		zap.Int("score", plan.Score),
		zap.Int("expansions", plan.Expansions),
	)
	if !plan.Exhaustive {
		s.logger.Warn("search budget exhausted, rotation may not be optimal",
			zap.Int("expansions", plan.Expansions),
			zap.Int("score", plan.Score),
		)
	}

	return plan, nil
}

// Rotate plans, stores one planned session per pair dated today and optionally
// announces the pairs.
func (s *RotationService) Rotate(ctx context.Context, cmd RotateCommand) (Rotation, error) {
	if cmd.Notify && s.notifier == nil {
		return Rotation{}, domain.ErrNotifierNotConfigured
	}

	now := s.clock.Now()
	plan, err := s.plan(ctx, now)
	if err != nil {
		return Rotation{}, err
	}

	rotation := Rotation{
		Plan:     plan,
		Date:     sessionDay(now),
		Sessions: make([]domain.PairSession, 0, len(plan.Pairs)),
	}
	for _, pair := range plan.Pairs {
		rotation.Sessions = append(rotation.Sessions, domain.PairSession{
			ID:      s.newID(),
			Members: pair.Members(),
			Date:    rotation.Date,
			Status:  domain.SessionStatusPlanned,
		})
	}

	if len(rotation.Sessions) > 0 {
		if err := s.repos.Sessions.SaveAll(ctx, rotation.Sessions); err != nil {
			return Rotation{}, fmt.Errorf("save sessions: %w", err)
		}
	}
	s.logger.Info("rotation recorded",
		zap.String("date", rotation.Date.Format(time.DateOnly)),
		zap.Int("sessions", len(rotation.Sessions)),
		zap.Int("score", plan.Score),
	)

	if !cmd.Notify {
		return rotation, nil
	}

	if err := s.notifier.Announce(ctx, ports.Announcement{Pairs: plan.Pairs, Unpaired: plan.Unpaired}); err != nil {
		return rotation, fmt.Errorf("announce rotation: %w", err)
	}
	rotation.Notified = true

	return rotation, nil
}

// sessionDay maps the local calendar day of now onto the midnight UTC value
// that date-only session records decode to.
func sessionDay(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
