package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	reviews map[string]Review // keyed by userID + "/" + gameID
	nextID  string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{reviews: map[string]Review{}, nextID: "r1"}
}

func (f *fakeRepo) Create(_ context.Context, rv *Review) error {
	rv.ID = f.nextID
	f.reviews[rv.UserID+"/"+rv.GameID] = *rv
	return nil
}

func (f *fakeRepo) ExistsByUserAndGame(_ context.Context, userID, gameID string) (bool, error) {
	_, ok := f.reviews[userID+"/"+gameID]
	return ok, nil
}

func (f *fakeRepo) ListByGame(_ context.Context, gameID string) ([]WithAuthor, error) {
	var out []WithAuthor
	for _, rv := range f.reviews {
		if rv.GameID == gameID {
			out = append(out, WithAuthor{Review: rv})
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, userID, reviewID string) error {
	for k, rv := range f.reviews {
		if rv.ID == reviewID && rv.UserID == userID {
			delete(f.reviews, k)
			return nil
		}
	}
	return ErrNotFound
}

func TestService_Create(t *testing.T) {
	svc := NewService(newFakeRepo())

	content := "A masterpiece."
	rv, err := svc.Create(context.Background(), "u1", "g1", 5, &content)
	require.NoError(t, err)
	assert.Equal(t, "r1", rv.ID)
	assert.Equal(t, 5, rv.Rating)
}

func TestService_Create_OnePerGame(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), "u1", "g1", 4, nil)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "u1", "g1", 5, nil)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// A different user may still review the same game.
	_, err = svc.Create(context.Background(), "u2", "g1", 3, nil)
	assert.NoError(t, err)
}

func TestService_Delete_OwnOnly(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	rv, err := svc.Create(context.Background(), "u1", "g1", 4, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(context.Background(), "u2", rv.ID), ErrNotFound)
	assert.NoError(t, svc.Delete(context.Background(), "u1", rv.ID))
}
