package playsession

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byID   map[string]Session
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]Session{}}
}

func (f *fakeRepo) Create(_ context.Context, s *Session) error {
	f.nextID++
	s.ID = "s" + string(rune('0'+f.nextID))
	f.byID[s.ID] = *s
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (Session, error) {
	s, ok := f.byID[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (f *fakeRepo) ActiveByUserAndGame(_ context.Context, userID, gameID string) (Session, error) {
	for _, s := range f.byID {
		if s.UserID == userID && s.GameID == gameID && s.EndedAt == nil {
			return s, nil
		}
	}
	return Session{}, ErrNotFound
}

func (f *fakeRepo) End(_ context.Context, id string, durationMinutes int, notes *string) (Session, error) {
	s := f.byID[id]
	now := time.Now()
	s.EndedAt = &now
	s.DurationMinutes = &durationMinutes
	s.Notes = notes
	f.byID[id] = s
	return s, nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID string) ([]Session, error) {
	var out []Session
	for _, s := range f.byID {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func serviceAt(repo *fakeRepo, now time.Time) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

func TestService_Start(t *testing.T) {
	start := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	svc := serviceAt(repo, start)

	sess, err := svc.Start(context.Background(), "u1", "g1")
	require.NoError(t, err)
	assert.Equal(t, start, sess.StartedAt)
	assert.Nil(t, sess.EndedAt)
}

func TestService_Start_OneActivePerGame(t *testing.T) {
	repo := newFakeRepo()
	svc := serviceAt(repo, time.Now())

	_, err := svc.Start(context.Background(), "u1", "g1")
	require.NoError(t, err)

	_, err = svc.Start(context.Background(), "u1", "g1")
	assert.ErrorIs(t, err, ErrAlreadyActive)

	// A different game may run in parallel.
	_, err = svc.Start(context.Background(), "u1", "g2")
	assert.NoError(t, err)
}

func TestService_End_DurationMinutes(t *testing.T) {
	start := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	svc := serviceAt(repo, start)

	sess, err := svc.Start(context.Background(), "u1", "g1")
	require.NoError(t, err)

	svc.now = func() time.Time { return start.Add(93 * time.Minute) }
	notes := "Beat the swamp boss"
	ended, err := svc.End(context.Background(), "u1", sess.ID, &notes)
	require.NoError(t, err)
	require.NotNil(t, ended.DurationMinutes)
	assert.Equal(t, 93, *ended.DurationMinutes)
	assert.Equal(t, &notes, ended.Notes)
}

func TestService_End_MinimumOneMinute(t *testing.T) {
	start := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	svc := serviceAt(repo, start)

	sess, err := svc.Start(context.Background(), "u1", "g1")
	require.NoError(t, err)

	svc.now = func() time.Time { return start.Add(10 * time.Second) }
	ended, err := svc.End(context.Background(), "u1", sess.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, *ended.DurationMinutes)
}

func TestService_End_Twice(t *testing.T) {
	repo := newFakeRepo()
	svc := serviceAt(repo, time.Now())

	sess, err := svc.Start(context.Background(), "u1", "g1")
	require.NoError(t, err)

	_, err = svc.End(context.Background(), "u1", sess.ID, nil)
	require.NoError(t, err)

	_, err = svc.End(context.Background(), "u1", sess.ID, nil)
	assert.ErrorIs(t, err, ErrAlreadyEnded)
}

func TestService_End_OwnSessionsOnly(t *testing.T) {
	repo := newFakeRepo()
	svc := serviceAt(repo, time.Now())

	sess, err := svc.Start(context.Background(), "u1", "g1")
	require.NoError(t, err)

	_, err = svc.End(context.Background(), "u2", sess.ID, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
