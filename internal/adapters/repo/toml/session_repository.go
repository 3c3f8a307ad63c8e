package toml

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/pairup/internal/domain"
	"github.com/bnema/pairup/internal/ports"
	"github.com/spf13/viper"
)

const (
	sessionsPathKey  = "sessions.path"
	sessionsFileName = "sessions.toml"
)

// SessionRepository stores pair sessions with member ids only; the roster owns
// display data.
type SessionRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(cfg *viper.Viper) (*SessionRepository, error) {
	path, err := resolvePath(cfg, sessionsPathKey, sessionsFileName)
	if err != nil {
		return nil, err
	}

	return &SessionRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *SessionRepository) List(ctx context.Context) ([]domain.PairSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	sessions := make([]domain.PairSession, 0, len(file.Sessions))
	for _, entry := range file.Sessions {
		session, err := fromSessionSchema(entry)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

// SaveAll upserts sessions by id in a single file write.
func (r *SessionRepository) SaveAll(ctx context.Context, sessions []domain.PairSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(sessions) == 0 {
		return nil
	}

	for _, session := range sessions {
		if session.Status != "" && !session.Status.Valid() {
			return fmt.Errorf("session %q: unsupported status %q", session.ID, session.Status)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	positions := make(map[string]int, len(file.Sessions))
	for i, entry := range file.Sessions {
		positions[entry.ID] = i
	}

	for _, session := range sessions {
		encoded := toSessionSchema(session)
		if i, ok := positions[encoded.ID]; ok {
			file.Sessions[i] = encoded
			continue
		}
		positions[encoded.ID] = len(file.Sessions)
		file.Sessions = append(file.Sessions, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeTOMLFile(r.path, file)
}

func (r *SessionRepository) readSchema() (sessionsFileSchema, error) {
	var file sessionsFileSchema
	if err := readTOMLFile(r.path, &file); err != nil {
		return sessionsFileSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return sessionsFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func toSessionSchema(session domain.PairSession) sessionSchema {
	members := make([]string, 0, len(session.Members))
	for _, member := range session.Members {
		members = append(members, string(member.ID))
	}

	return sessionSchema{
		ID:         session.ID,
		Members:    members,
		Date:       formatDate(session.Date),
		ProjectIDs: session.ProjectIDs,
		Status:     string(session.Status),
	}
}

func fromSessionSchema(schema sessionSchema) (domain.PairSession, error) {
	date, err := parseTime(schema.Date)
	if err != nil {
		return domain.PairSession{}, fmt.Errorf("session %q date: %w", schema.ID, err)
	}

	members := make([]domain.Member, 0, len(schema.Members))
	for _, id := range schema.Members {
		members = append(members, domain.Member{ID: domain.MemberID(id)})
	}

	return domain.PairSession{
		ID:         schema.ID,
		Members:    members,
		Date:       date,
		ProjectIDs: schema.ProjectIDs,
		Status:     domain.SessionStatus(schema.Status),
	}, nil
}
