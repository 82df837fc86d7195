package igdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var testCreds = Credentials{ClientID: "test-client-id", ClientSecret: "test-client-secret"}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newGrantServer(t *testing.T, calls *atomic.Int64, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.Form.Get("grant_type"); got != "client_credentials" {
			t.Errorf("expected grant_type=client_credentials, got %q", got)
		}
		if got := r.Form.Get("client_id"); got != testCreds.ClientID {
			t.Errorf("expected client_id %q, got %q", testCreds.ClientID, got)
		}
		if got := r.Form.Get("client_secret"); got != testCreds.ClientSecret {
			t.Errorf("expected client_secret %q, got %q", testCreds.ClientSecret, got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestTokenSource_CachedTokenSkipsUpstream(t *testing.T) {
	var calls atomic.Int64
	server := newGrantServer(t, &calls, `{"access_token":"tok-1","expires_in":7200}`)
	defer server.Close()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ts := newTokenSource(server.Client(), server.URL, testCreds, fixedClock(now))

	token, err := ts.Token(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token != "tok-1" {
		t.Errorf("expected tok-1, got %q", token)
	}

	// Second call inside the validity window must not hit upstream.
	token, err = ts.Token(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token != "tok-1" {
		t.Errorf("expected cached tok-1, got %q", token)
	}
	if calls.Load() != 1 {
		t.Errorf("expected 1 upstream call, got %d", calls.Load())
	}
}

func TestTokenSource_ExpiryBuffer(t *testing.T) {
	var calls atomic.Int64
	server := newGrantServer(t, &calls, `{"access_token":"tok-1","expires_in":7200}`)
	defer server.Close()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ts := newTokenSource(server.Client(), server.URL, testCreds, fixedClock(now))

	if _, err := ts.Token(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := now.Add(7200*time.Second - 300*time.Second)
	if !ts.current.expiresAt.Equal(want) {
		t.Errorf("expected expiry %v, got %v", want, ts.current.expiresAt)
	}
}

func TestTokenSource_DefaultExpiresIn(t *testing.T) {
	var calls atomic.Int64
	server := newGrantServer(t, &calls, `{"access_token":"tok-1"}`)
	defer server.Close()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ts := newTokenSource(server.Client(), server.URL, testCreds, fixedClock(now))

	if _, err := ts.Token(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := now.Add(3600*time.Second - 300*time.Second)
	if !ts.current.expiresAt.Equal(want) {
		t.Errorf("expected expiry %v, got %v", want, ts.current.expiresAt)
	}
}

func TestTokenSource_RefreshesExpiredToken(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if n == 1 {
			_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":3600}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"tok-2","expires_in":3600}`))
	}))
	defer server.Close()

	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ts := newTokenSource(server.Client(), server.URL, testCreds, func() time.Time { return current })

	token, err := ts.Token(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token != "tok-1" {
		t.Errorf("expected tok-1, got %q", token)
	}

	// Move the clock past the buffered expiry.
	current = current.Add(3600 * time.Second)

	token, err = ts.Token(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token != "tok-2" {
		t.Errorf("expected refreshed tok-2, got %q", token)
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 upstream calls, got %d", calls.Load())
	}
}

func TestTokenSource_Non200IsAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"invalid client secret"}`))
	}))
	defer server.Close()

	ts := newTokenSource(server.Client(), server.URL, testCreds, time.Now)

	_, err := ts.Token(context.Background())
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError, got %v", err)
	}
	if authErr.StatusCode != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", authErr.StatusCode)
	}
	if authErr.Body != `{"message":"invalid client secret"}` {
		t.Errorf("expected upstream body in error, got %q", authErr.Body)
	}
}

func TestTokenSource_ConcurrentRefreshSingleUpstreamCallObserved(t *testing.T) {
	var calls atomic.Int64
	server := newGrantServer(t, &calls, `{"access_token":"tok-1","expires_in":3600}`)
	defer server.Close()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ts := newTokenSource(server.Client(), server.URL, testCreds, fixedClock(now))

	const workers = 8
	var wg sync.WaitGroup
	tokens := make([]string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token, err := ts.Token(context.Background())
			if err != nil {
				t.Errorf("worker %d: %v", i, err)
				return
			}
			tokens[i] = token
		}(i)
	}
	wg.Wait()

	// The first caller through the critical section refreshes; the rest
	// must observe that token, not race into their own refresh.
	if calls.Load() != 1 {
		t.Errorf("expected 1 upstream call, got %d", calls.Load())
	}
	for i, token := range tokens {
		if token != "tok-1" {
			t.Errorf("worker %d: expected tok-1, got %q", i, token)
		}
	}
}
