package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bnema/pairup/internal/domain"
)

// RosterService manages members, their absences and the recorded sessions.
type RosterService struct {
	repos  Repositories
	logger *zap.Logger
	newID  func() string
}

func NewRosterService(repos Repositories, logger *zap.Logger) *RosterService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RosterService{repos: repos, logger: logger, newID: uuid.NewString}
}

func (s *RosterService) AddMember(ctx context.Context, cmd AddMemberCommand) (domain.Member, error) {
	member := domain.Member{
		ID:    domain.MemberID(strings.TrimSpace(string(cmd.ID))),
		Name:  strings.TrimSpace(cmd.Name),
		Slack: strings.TrimSpace(cmd.Slack),
	}
	if member.ID == "" {
		member.ID = domain.MemberID(s.newID())
	}
	if err := member.Validate(); err != nil {
		return domain.Member{}, fmt.Errorf("validate member: %w", err)
	}

	_, err := s.repos.Members.GetByID(ctx, member.ID)
	switch {
	case err == nil:
		return domain.Member{}, fmt.Errorf("%w: %q", domain.ErrDuplicateMember, member.ID)
	case !errors.Is(err, domain.ErrMemberNotFound):
		return domain.Member{}, fmt.Errorf("get member by id: %w", err)
	}

	if err := s.repos.Members.Save(ctx, member); err != nil {
		return domain.Member{}, fmt.Errorf("save member: %w", err)
	}
	s.logger.Info("member added", zap.String("member_id", string(member.ID)))

	return member, nil
}

func (s *RosterService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.repos.Members.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

// RemoveMember drops a member from the roster. Their past sessions stay in history.
func (s *RosterService) RemoveMember(ctx context.Context, id domain.MemberID) error {
	if err := s.repos.Members.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	s.logger.Info("member removed", zap.String("member_id", string(id)))
	return nil
}

func (s *RosterService) AddAbsence(ctx context.Context, cmd AddAbsenceCommand) (domain.Absence, error) {
	absence := domain.Absence{
		ID:       s.newID(),
		MemberID: cmd.MemberID,
		Start:    cmd.Start,
		End:      cmd.End,
	}
	if err := absence.Validate(); err != nil {
		return domain.Absence{}, fmt.Errorf("validate absence: %w", err)
	}

	if _, err := s.repos.Members.GetByID(ctx, absence.MemberID); err != nil {
		return domain.Absence{}, fmt.Errorf("get member by id: %w", err)
	}

	if err := s.repos.Absences.Save(ctx, absence); err != nil {
		return domain.Absence{}, fmt.Errorf("save absence: %w", err)
	}
	s.logger.Info("absence added",
		zap.String("member_id", string(absence.MemberID)),
		zap.Time("start", absence.Start),
		zap.Time("end", absence.End),
	)

	return absence, nil
}

func (s *RosterService) ListAbsences(ctx context.Context) ([]domain.Absence, error) {
	absences, err := s.repos.Absences.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list absences: %w", err)
	}
	return absences, nil
}

// History returns every stored session, oldest first, with member names filled in from the roster.
func (s *RosterService) History(ctx context.Context) ([]HistoryEntry, error) {
	sessions, err := s.repos.Sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	roster, err := s.repos.Members.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	byID := make(map[domain.MemberID]domain.Member, len(roster))
	for _, member := range roster {
		byID[member.ID] = member
	}

	entries := make([]HistoryEntry, 0, len(sessions))
	for _, session := range sessions {
		entry := HistoryEntry{Session: session}
		entry.Session.Members = make([]domain.Member, len(session.Members))
		for i, member := range session.Members {
			if known, ok := byID[member.ID]; ok {
				member = known
			} else {
				entry.Unknown = append(entry.Unknown, member.ID)
			}
			entry.Session.Members[i] = member
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Session.Date.Before(entries[j].Session.Date)
	})

	return entries, nil
}
