package achievement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	achievements map[string]Achievement
	completed    map[string]bool // userID + "/" + achievementID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{achievements: map[string]Achievement{}, completed: map[string]bool{}}
}

func (f *fakeRepo) ListByGame(_ context.Context, gameID string) ([]Achievement, error) {
	var out []Achievement
	for _, a := range f.achievements {
		if a.GameID == gameID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (Achievement, error) {
	a, ok := f.achievements[id]
	if !ok {
		return Achievement{}, ErrNotFound
	}
	return a, nil
}

func (f *fakeRepo) Complete(_ context.Context, userID, achievementID string) (Earned, error) {
	k := userID + "/" + achievementID
	if f.completed[k] {
		return Earned{}, ErrAlreadyCompleted
	}
	f.completed[k] = true
	return Earned{Achievement: f.achievements[achievementID], EarnedAt: time.Now()}, nil
}

func (f *fakeRepo) ListEarned(_ context.Context, userID, gameID string) ([]Earned, error) {
	var out []Earned
	for id, a := range f.achievements {
		if a.GameID == gameID && f.completed[userID+"/"+id] {
			out = append(out, Earned{Achievement: a})
		}
	}
	return out, nil
}

func TestService_Complete(t *testing.T) {
	repo := newFakeRepo()
	repo.achievements["a1"] = Achievement{ID: "a1", GameID: "g1", Name: "First Steps", Rarity: RarityCommon, Points: 10}
	svc := NewService(repo)

	earned, err := svc.Complete(context.Background(), "u1", "a1")
	require.NoError(t, err)
	assert.Equal(t, "First Steps", earned.Name)

	_, err = svc.Complete(context.Background(), "u1", "a1")
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestService_Complete_UnknownAchievement(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Complete(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListEarned(t *testing.T) {
	repo := newFakeRepo()
	repo.achievements["a1"] = Achievement{ID: "a1", GameID: "g1", Name: "First Steps"}
	repo.achievements["a2"] = Achievement{ID: "a2", GameID: "g1", Name: "Marathon"}
	svc := NewService(repo)

	_, err := svc.Complete(context.Background(), "u1", "a1")
	require.NoError(t, err)

	earned, err := svc.ListEarned(context.Background(), "u1", "g1")
	require.NoError(t, err)
	require.Len(t, earned, 1)
	assert.Equal(t, "First Steps", earned[0].Name)
}

func TestValidRarity(t *testing.T) {
	for _, r := range []string{RarityCommon, RarityRare, RarityEpic, RarityLegendary} {
		assert.True(t, ValidRarity(r))
	}
	assert.False(t, ValidRarity("MYTHIC"))
	assert.False(t, ValidRarity(""))
}
