package toml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/pairup/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "members.toml")
	cfg := viper.New()
	cfg.Set("members.path", path)

	repo, err := NewMemberRepository(cfg)
	require.NoError(t, err)

	alice := domain.Member{ID: "alice", Name: "Alice", Slack: "U01ALICE"}
	bob := domain.Member{ID: "bob", Name: "Bob"}

	require.NoError(t, repo.Save(context.Background(), alice))
	require.NoError(t, repo.Save(context.Background(), bob))

	got, err := repo.GetByID(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Member{alice, bob}, all)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestMemberRepositorySaveUpdatesInPlace(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set("members.path", filepath.Join(t.TempDir(), "members.toml"))
	repo, err := NewMemberRepository(cfg)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, domain.Member{ID: "alice", Name: "Alice"}))
	require.NoError(t, repo.Save(ctx, domain.Member{ID: "bob", Name: "Bob"}))
	require.NoError(t, repo.Save(ctx, domain.Member{ID: "alice", Name: "Alice B."}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Member{{ID: "alice", Name: "Alice B."}, {ID: "bob", Name: "Bob"}}, all)
}

func TestMemberRepositoryDelete(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set("members.path", filepath.Join(t.TempDir(), "members.toml"))
	repo, err := NewMemberRepository(cfg)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, domain.Member{ID: "alice", Name: "Alice"}))
	require.NoError(t, repo.Save(ctx, domain.Member{ID: "bob", Name: "Bob"}))

	require.NoError(t, repo.Delete(ctx, "alice"))
	require.ErrorIs(t, repo.Delete(ctx, "alice"), domain.ErrMemberNotFound)

	_, err = repo.GetByID(ctx, "alice")
	require.ErrorIs(t, err, domain.ErrMemberNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Member{{ID: "bob", Name: "Bob"}}, all)
}

func TestMemberRepositoryMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set("members.path", filepath.Join(t.TempDir(), "nope", "members.toml"))
	repo, err := NewMemberRepository(cfg)
	require.NoError(t, err)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemberRepositoryRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "members.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 2\n"), 0o600))

	cfg := viper.New()
	cfg.Set("members.path", path)
	repo, err := NewMemberRepository(cfg)
	require.NoError(t, err)

	_, err = repo.List(context.Background())
	assert.ErrorContains(t, err, "unsupported members schema version 2 (current 1)")
}

func TestMemberRepositoryRejectsIDsContainingKeySeparator(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "members.toml")
	content := "version = 1\n\n[[members]]\nid = \"a:b\"\nname = \"Ann\"\n\n[[members]]\nid = \"c\"\nname = \"Cy\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := viper.New()
	cfg.Set("members.path", path)
	repo, err := NewMemberRepository(cfg)
	require.NoError(t, err)

	_, err = repo.List(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidMemberID)
	assert.ErrorContains(t, err, "members[0]")
}

func TestMemberRepositoryHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set("members.path", filepath.Join(t.TempDir(), "members.toml"))
	repo, err := NewMemberRepository(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, repo.Save(ctx, domain.Member{ID: "alice", Name: "Alice"}), context.Canceled)
	_, err = repo.List(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAbsenceRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set("absences.path", filepath.Join(t.TempDir(), "absences.toml"))
	repo, err := NewAbsenceRepository(cfg)
	require.NoError(t, err)

	absence := domain.Absence{
		ID:       "vac-1",
		MemberID: "alice",
		Start:    time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(context.Background(), absence))

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Absence{absence}, all)
}

func TestAbsenceRepositoryReadsDateOnlyBounds(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absences.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[absences]]",
		`id = "vac-1"`,
		`member_id = "alice"`,
		`start = "2026-10-12"`,
		`end = "2026-10-16"`,
		"",
	}, "\n")), 0o600))

	cfg := viper.New()
	cfg.Set("absences.path", path)
	repo, err := NewAbsenceRepository(cfg)
	require.NoError(t, err)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), all[0].Start)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), all[0].End)
}

func TestAbsenceRepositoryRejectsBadTimestamp(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absences.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n\n[[absences]]\nid = \"vac-1\"\nmember_id = \"alice\"\nstart = \"next monday\"\nend = \"\"\n"), 0o600))

	cfg := viper.New()
	cfg.Set("absences.path", path)
	repo, err := NewAbsenceRepository(cfg)
	require.NoError(t, err)

	_, err = repo.List(context.Background())
	assert.ErrorContains(t, err, `absence "vac-1" start`)
}

func TestSessionRepositorySaveAllUpserts(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set("sessions.path", filepath.Join(t.TempDir(), "sessions.toml"))
	repo, err := NewSessionRepository(cfg)
	require.NoError(t, err)

	ctx := context.Background()
	date := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	first := domain.PairSession{
		ID:      "s-1",
		Members: []domain.Member{{ID: "alice"}, {ID: "bob"}},
		Date:    date,
		Status:  domain.SessionStatusPlanned,
	}
	second := domain.PairSession{
		ID:         "s-2",
		Members:    []domain.Member{{ID: "max"}, {ID: "ivan"}},
		Date:       date,
		ProjectIDs: []string{"proj-1"},
		Status:     domain.SessionStatusPlanned,
	}
	require.NoError(t, repo.SaveAll(ctx, []domain.PairSession{first, second}))

	first.Status = domain.SessionStatusDone
	require.NoError(t, repo.SaveAll(ctx, []domain.PairSession{first}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.PairSession{first, second}, all)
}

func TestSessionRepositoryKeepsMalformedSessionsForCallerToReport(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sessions.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n\n[[sessions]]\nid = \"s-1\"\nmembers = [\"alice\", \"bob\", \"max\"]\ndate = \"2026-10-05\"\nstatus = \"done\"\n"), 0o600))

	cfg := viper.New()
	cfg.Set("sessions.path", path)
	repo, err := NewSessionRepository(cfg)
	require.NoError(t, err)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Len(t, all[0].Members, 3)
}

func TestSessionRepositoryRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set("sessions.path", filepath.Join(t.TempDir(), "sessions.toml"))
	repo, err := NewSessionRepository(cfg)
	require.NoError(t, err)

	err = repo.SaveAll(context.Background(), []domain.PairSession{{ID: "s-1", Status: "maybe"}})
	assert.ErrorContains(t, err, `unsupported status "maybe"`)
}

func TestRepositoriesSharingAPathShareALock(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "members.toml")
	cfg := viper.New()
	cfg.Set("members.path", path)

	first, err := NewMemberRepository(cfg)
	require.NoError(t, err)
	second, err := NewMemberRepository(cfg)
	require.NoError(t, err)
	assert.Same(t, first.mu, second.mu)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			repo := first
			if i%2 == 1 {
				repo = second
			}
			id := domain.MemberID(string(rune('a' + i)))
			assert.NoError(t, repo.Save(context.Background(), domain.Member{ID: id, Name: string(id)}))
		}(i)
	}
	wg.Wait()

	all, err := first.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 8)
}
