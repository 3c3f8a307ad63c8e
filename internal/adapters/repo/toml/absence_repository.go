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
	absencesPathKey  = "absences.path"
	absencesFileName = "absences.toml"
)

type AbsenceRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.AbsenceRepository = (*AbsenceRepository)(nil)

func NewAbsenceRepository(cfg *viper.Viper) (*AbsenceRepository, error) {
	path, err := resolvePath(cfg, absencesPathKey, absencesFileName)
	if err != nil {
		return nil, err
	}

	return &AbsenceRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *AbsenceRepository) List(ctx context.Context) ([]domain.Absence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	absences := make([]domain.Absence, 0, len(file.Absences))
	for _, entry := range file.Absences {
		absence, err := fromAbsenceSchema(entry)
		if err != nil {
			return nil, err
		}
		absences = append(absences, absence)
	}

	return absences, nil
}

func (r *AbsenceRepository) Save(ctx context.Context, absence domain.Absence) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toAbsenceSchema(absence)
	updated := false
	for i := range file.Absences {
		if file.Absences[i].ID == encoded.ID {
			file.Absences[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Absences = append(file.Absences, encoded)
	}

	return writeTOMLFile(r.path, file)
}

func (r *AbsenceRepository) readSchema() (absencesFileSchema, error) {
	var file absencesFileSchema
	if err := readTOMLFile(r.path, &file); err != nil {
		return absencesFileSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return absencesFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func toAbsenceSchema(absence domain.Absence) absenceSchema {
	return absenceSchema{
		ID:       absence.ID,
		MemberID: string(absence.MemberID),
		Start:    formatTime(absence.Start),
		End:      formatTime(absence.End),
	}
}

func fromAbsenceSchema(schema absenceSchema) (domain.Absence, error) {
	start, err := parseTime(schema.Start)
	if err != nil {
		return domain.Absence{}, fmt.Errorf("absence %q start: %w", schema.ID, err)
	}
	end, err := parseTime(schema.End)
	if err != nil {
		return domain.Absence{}, fmt.Errorf("absence %q end: %w", schema.ID, err)
	}

	return domain.Absence{
		ID:       schema.ID,
		MemberID: domain.MemberID(schema.MemberID),
		Start:    start,
		End:      end,
	}, nil
}
