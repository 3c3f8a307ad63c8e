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
	membersPathKey  = "members.path"
	membersFileName = "members.toml"
)

type MemberRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.MemberRepository = (*MemberRepository)(nil)

func NewMemberRepository(cfg *viper.Viper) (*MemberRepository, error) {
	path, err := resolvePath(cfg, membersPathKey, membersFileName)
	if err != nil {
		return nil, err
	}

	return &MemberRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id domain.MemberID) (domain.Member, error) {
	if err := ctx.Err(); err != nil {
		return domain.Member{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Member{}, err
	}

	for _, entry := range file.Members {
		if entry.ID == string(id) {
			return fromMemberSchema(entry), nil
		}
	}

	return domain.Member{}, domain.ErrMemberNotFound
}

// List returns members in file order, which is the order pairs are enumerated in.
func (r *MemberRepository) List(ctx context.Context) ([]domain.Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	members := make([]domain.Member, 0, len(file.Members))
	for _, entry := range file.Members {
		members = append(members, fromMemberSchema(entry))
	}

	return members, nil
}

func (r *MemberRepository) Save(ctx context.Context, member domain.Member) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toMemberSchema(member)
	updated := false
	for i := range file.Members {
		if file.Members[i].ID == encoded.ID {
			file.Members[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Members = append(file.Members, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeTOMLFile(r.path, file)
}

func (r *MemberRepository) Delete(ctx context.Context, id domain.MemberID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Members[:0]
	found := false
	for _, entry := range file.Members {
		if entry.ID == string(id) {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return domain.ErrMemberNotFound
	}
	file.Members = kept

	return writeTOMLFile(r.path, file)
}

func (r *MemberRepository) readSchema() (membersFileSchema, error) {
	var file membersFileSchema
	if err := readTOMLFile(r.path, &file); err != nil {
		return membersFileSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return membersFileSchema{}, err
	}
	if err := file.validateIDs(); err != nil {
		return membersFileSchema{}, fmt.Errorf("read members file %s: %w", r.path, err)
	}
	file.applyDefaults()

	return file, nil
}

func toMemberSchema(member domain.Member) memberSchema {
	return memberSchema{
		ID:    string(member.ID),
		Name:  member.Name,
		Slack: member.Slack,
	}
}

func fromMemberSchema(schema memberSchema) domain.Member {
	return domain.Member{
		ID:    domain.MemberID(schema.ID),
		Name:  schema.Name,
		Slack: schema.Slack,
	}
}
