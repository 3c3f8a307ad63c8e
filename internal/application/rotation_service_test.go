package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/pairup/internal/domain"
	"github.com/bnema/pairup/internal/pairing"
	"github.com/bnema/pairup/internal/ports"
	"github.com/bnema/pairup/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var rotationNow = time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)

type rotationFixture struct {
	members  *memoryMembers
	absences *memoryAbsences
	sessions *mocks.MockSessionRepository
	notifier *mocks.MockNotifier
	clock    *mocks.MockClock
	logs     *observer.ObservedLogs
	service  *RotationService
}

func newRotationFixture(t *testing.T, opts pairing.Options, withNotifier bool) rotationFixture {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	f := rotationFixture{
		members:  &memoryMembers{members: roster("a", "b", "c", "d")},
		absences: &memoryAbsences{},
		sessions: mocks.NewMockSessionRepository(t),
		clock:    mocks.NewMockClock(t),
		logs:     logs,
	}

	var notifier ports.Notifier
	if withNotifier {
		f.notifier = mocks.NewMockNotifier(t)
		notifier = f.notifier
	}

	f.service = NewRotationService(
		Repositories{Members: f.members, Absences: f.absences, Sessions: f.sessions},
		pairing.NewOptimizer(opts),
		notifier,
		f.clock,
		zap.New(core),
	)
	f.service.newID = sequentialIDs("s")

	return f
}

func TestRotationServicePlanIgnoresFutureAndCancelledSessions(t *testing.T) {
	f := newRotationFixture(t, pairing.DefaultOptions(), false)
	f.clock.EXPECT().Now().Return(rotationNow)

	future := stored("3", "a", "c")
	future.Date = rotationNow.Add(7 * 24 * time.Hour)
	future.Status = domain.SessionStatusPlanned
	cancelled := stored("4", "b", "d")
	cancelled.Date = rotationNow.Add(-24 * time.Hour)
	cancelled.Status = domain.SessionStatusCancelled
	past := stored("1", "a", "b")
	past.Date = rotationNow.Add(-7 * 24 * time.Hour)

	f.sessions.EXPECT().List(mockAnyContext()).Return([]domain.PairSession{past, future, cancelled}, nil)

	plan, err := f.service.Plan(context.Background())
	require.NoError(t, err)

	members := f.members.members
	assert.Equal(t, []domain.Pair{
		{First: members[0], Second: members[2]},
		{First: members[1], Second: members[3]},
	}, plan.Pairs)
	assert.Equal(t, 0, plan.Score)
	assert.True(t, plan.Exhaustive)
	assert.Equal(t, 1, f.logs.FilterMessage("planned rotation").Len())
}

func TestRotationServicePlanSkipsAbsentMembers(t *testing.T) {
	f := newRotationFixture(t, pairing.DefaultOptions(), false)
	f.clock.EXPECT().Now().Return(rotationNow)
	f.absences.absences = []domain.Absence{{
		ID:       "x",
		MemberID: "d",
		Start:    rotationNow.Add(-time.Hour),
		End:      rotationNow.Add(time.Hour),
	}}
	f.sessions.EXPECT().List(mockAnyContext()).Return(nil, nil)

	plan, err := f.service.Plan(context.Background())
	require.NoError(t, err)

	members := f.members.members
	assert.Equal(t, []domain.Pair{{First: members[0], Second: members[1]}}, plan.Pairs)
	assert.Equal(t, []domain.Member{members[2]}, plan.Unpaired)
	assert.Equal(t, []domain.Member{members[3]}, plan.Absent)
}

func TestRotationServicePlanReportsMalformedHistory(t *testing.T) {
	f := newRotationFixture(t, pairing.DefaultOptions(), false)
	f.clock.EXPECT().Now().Return(rotationNow)
	f.sessions.EXPECT().List(mockAnyContext()).Return([]domain.PairSession{
		{ID: "bad", Members: []domain.Member{{ID: "a"}}, Date: rotationNow.Add(-time.Hour)},
	}, nil)

	_, err := f.service.Plan(context.Background())

	var malformed *domain.MalformedSessionError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "bad", malformed.SessionID)
	assert.Equal(t, 1, malformed.MemberCount)
}

func TestRotationServicePlanWarnsWhenBudgetRunsOut(t *testing.T) {
	f := newRotationFixture(t, pairing.Options{MaxExpansions: 1}, false)
	f.members.members = roster("a", "b", "c", "d", "e", "f")
	f.clock.EXPECT().Now().Return(rotationNow)
	f.sessions.EXPECT().List(mockAnyContext()).Return(nil, nil)

	plan, err := f.service.Plan(context.Background())
	require.NoError(t, err)

	assert.False(t, plan.Exhaustive)
	assert.Len(t, plan.Pairs, 3)
	warnings := f.logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "search budget exhausted, rotation may not be optimal", warnings[0].Message)
}

func TestRotationServiceRotateSavesAndAnnounces(t *testing.T) {
	f := newRotationFixture(t, pairing.DefaultOptions(), true)
	f.clock.EXPECT().Now().Return(rotationNow)
	past := stored("1", "a", "b")
	past.Date = rotationNow.Add(-7 * 24 * time.Hour)
	f.sessions.EXPECT().List(mockAnyContext()).Return([]domain.PairSession{past}, nil)

	members := f.members.members
	today := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	f.sessions.EXPECT().SaveAll(mockAnyContext(), []domain.PairSession{
		{ID: "s1", Members: []domain.Member{members[0], members[2]}, Date: today, Status: domain.SessionStatusPlanned},
		{ID: "s2", Members: []domain.Member{members[1], members[3]}, Date: today, Status: domain.SessionStatusPlanned},
	}).Return(nil)
	f.notifier.EXPECT().Announce(mockAnyContext(), mock.MatchedBy(func(a ports.Announcement) bool {
		return len(a.Pairs) == 2 && a.Pairs[0].First.ID == "a" && a.Pairs[0].Second.ID == "c" && len(a.Unpaired) == 0
	})).Return(nil)

	rotation, err := f.service.Rotate(context.Background(), RotateCommand{Notify: true})
	require.NoError(t, err)

	assert.True(t, rotation.Notified)
	assert.Equal(t, today, rotation.Date)
	assert.Len(t, rotation.Sessions, 2)
	assert.Equal(t, 1, f.logs.FilterMessage("rotation recorded").Len())
}

func TestRotationServiceRotateWithoutNotify(t *testing.T) {
	f := newRotationFixture(t, pairing.DefaultOptions(), true)
	f.clock.EXPECT().Now().Return(rotationNow)
	f.sessions.EXPECT().List(mockAnyContext()).Return(nil, nil)
	f.sessions.EXPECT().SaveAll(mockAnyContext(), mock.Anything).Return(nil)

	rotation, err := f.service.Rotate(context.Background(), RotateCommand{})
	require.NoError(t, err)
	assert.False(t, rotation.Notified)
}

func TestRotationServiceRotateRequiresNotifier(t *testing.T) {
	f := newRotationFixture(t, pairing.DefaultOptions(), false)

	_, err := f.service.Rotate(context.Background(), RotateCommand{Notify: true})
	require.ErrorIs(t, err, domain.ErrNotifierNotConfigured)
	assert.False(t, f.service.CanNotify())
}

func TestRotationServiceRotateSkipsSaveForEmptyPool(t *testing.T) {
	f := newRotationFixture(t, pairing.DefaultOptions(), false)
	f.members.members = roster("solo")
	f.clock.EXPECT().Now().Return(rotationNow)
	f.sessions.EXPECT().List(mockAnyContext()).Return(nil, nil)

	rotation, err := f.service.Rotate(context.Background(), RotateCommand{})
	require.NoError(t, err)
	assert.Empty(t, rotation.Sessions)
	assert.Equal(t, []domain.Member{f.members.members[0]}, rotation.Plan.Unpaired)
}

func TestRotationServiceRotateKeepsSessionsWhenAnnounceFails(t *testing.T) {
	f := newRotationFixture(t, pairing.DefaultOptions(), true)
	f.clock.EXPECT().Now().Return(rotationNow)
	f.sessions.EXPECT().List(mockAnyContext()).Return(nil, nil)
	f.sessions.EXPECT().SaveAll(mockAnyContext(), mock.Anything).Return(nil)
	f.notifier.EXPECT().Announce(mockAnyContext(), mock.Anything).Return(errors.New("slack down"))

	rotation, err := f.service.Rotate(context.Background(), RotateCommand{Notify: true})
	require.Error(t, err)
	assert.ErrorContains(t, err, "announce rotation: slack down")
	assert.Len(t, rotation.Sessions, 2)
	assert.False(t, rotation.Notified)
}

func TestRotationServiceRotateStopsWhenSaveFails(t *testing.T) {
	f := newRotationFixture(t, pairing.DefaultOptions(), true)
	f.clock.EXPECT().Now().Return(rotationNow)
	f.sessions.EXPECT().List(mockAnyContext()).Return(nil, nil)
	f.sessions.EXPECT().SaveAll(mockAnyContext(), mock.Anything).Return(errors.New("disk full"))

	_, err := f.service.Rotate(context.Background(), RotateCommand{Notify: true})
	assert.ErrorContains(t, err, "save sessions: disk full")
}

func TestRotationServicePlanCountsSessionsFromLaterTodayInLocalTime(t *testing.T) {
	f := newRotationFixture(t, pairing.DefaultOptions(), false)
	// 01:00 on the 14th in UTC+10 is still the 13th in UTC.
	f.clock.EXPECT().Now().Return(time.Date(2026, 10, 14, 1, 0, 0, 0, time.FixedZone("UTC+10", 10*3600)))

	today := stored("1", "a", "b")
	today.Date = time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	today.Status = domain.SessionStatusPlanned
	f.sessions.EXPECT().List(mockAnyContext()).Return([]domain.PairSession{today}, nil)

	plan, err := f.service.Plan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "c", string(plan.Pairs[0].Second.ID))
	assert.Equal(t, 0, plan.Score)
}
