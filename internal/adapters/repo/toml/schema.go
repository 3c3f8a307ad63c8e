package toml

import (
	"fmt"

	"github.com/bnema/pairup/internal/domain"
)

const (
	currentMembersSchemaVersion  = 1
	currentAbsencesSchemaVersion = 1
	currentSessionsSchemaVersion = 1
)

type membersFileSchema struct {
	Version int            `toml:"version"`
	Members []memberSchema `toml:"members"`
}

func (s *membersFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentMembersSchemaVersion
	}
}

func (s membersFileSchema) validateVersion() error {
	if s.Version > currentMembersSchemaVersion {
		return fmt.Errorf("unsupported members schema version %d (current %d)", s.Version, currentMembersSchemaVersion)
	}

	return nil
}

func (s membersFileSchema) validateIDs() error {
	for i, member := range s.Members {
		if err := domain.MemberID(member.ID).Validate(); err != nil {
			return fmt.Errorf("members[%d]: %w", i, err)
		}
	}

	return nil
}

type memberSchema struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Slack string `toml:"slack,omitempty"`
}

type absencesFileSchema struct {
	Version  int             `toml:"version"`
	Absences []absenceSchema `toml:"absences"`
}

func (s *absencesFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentAbsencesSchemaVersion
	}
}

func (s absencesFileSchema) validateVersion() error {
	if s.Version > currentAbsencesSchemaVersion {
		return fmt.Errorf("unsupported absences schema version %d (current %d)", s.Version, currentAbsencesSchemaVersion)
	}

	return nil
}

type absenceSchema struct {
	ID       string `toml:"id"`
	MemberID string `toml:"member_id"`
	Start    string `toml:"start"`
	End      string `toml:"end"`
}

type sessionsFileSchema struct {
	Version  int             `toml:"version"`
	Sessions []sessionSchema `toml:"sessions"`
}

func (s *sessionsFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSessionsSchemaVersion
	}
}

func (s sessionsFileSchema) validateVersion() error {
	if s.Version > currentSessionsSchemaVersion {
		return fmt.Errorf("unsupported sessions schema version %d (current %d)", s.Version, currentSessionsSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	ID         string   `toml:"id"`
	Members    []string `toml:"members"`
	Date       string   `toml:"date"`
	ProjectIDs []string `toml:"project_ids,omitempty"`
	Status     string   `toml:"status"`
}
