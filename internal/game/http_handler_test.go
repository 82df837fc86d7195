package game

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamehub/internal/platform/igdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingMetadata struct {
	err error
}

func (f failingMetadata) Search(context.Context, string, int) ([]igdb.Game, error) {
	return nil, f.err
}

func (f failingMetadata) GetByID(context.Context, int64) (igdb.Game, error) {
	return igdb.Game{}, f.err
}

func (f failingMetadata) Popular(context.Context, int) ([]igdb.Game, error) {
	return nil, f.err
}

func TestHTTPHandler_Search_RequiresQuery(t *testing.T) {
	handler := NewHTTPHandler(NewService(newFakeRepo(), &fakeMetadata{}))

	for _, target := range []string{"/games/search", "/games/search?q=", "/games/search?q=%20"} {
		w := httptest.NewRecorder()
		handler.Search(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, "target %q", target)
	}
}

func TestHTTPHandler_Search_PassesTermAndLimit(t *testing.T) {
	meta := &fakeMetadata{}
	handler := NewHTTPHandler(NewService(newFakeRepo(), meta))

	w := httptest.NewRecorder()
	handler.Search(w, httptest.NewRequest(http.MethodGet, "/games/search?q=zelda&limit=5", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "zelda", meta.searchTerm)
	assert.Equal(t, 5, meta.lastLimit)
}

func TestHTTPHandler_Lookup_NotFound(t *testing.T) {
	handler := NewHTTPHandler(NewService(newFakeRepo(), &fakeMetadata{}))

	w := httptest.NewRecorder()
	handler.Lookup(w, httptest.NewRequest(http.MethodGet, "/games/1942", nil), "1942")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHTTPHandler_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
	}{
		{"auth failure", &igdb.AuthError{StatusCode: 403}, "UPSTREAM_AUTH_ERROR"},
		{"query failure", &igdb.QueryError{StatusCode: 500}, "UPSTREAM_QUERY_ERROR"},
		{"other failure", context.DeadlineExceeded, "UPSTREAM_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHTTPHandler(NewService(newFakeRepo(), failingMetadata{err: tt.err}))

			w := httptest.NewRecorder()
			handler.Popular(w, httptest.NewRequest(http.MethodGet, "/games/popular", nil))

			assert.Equal(t, http.StatusBadGateway, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedCode)
		})
	}
}
