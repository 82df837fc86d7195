package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// expiryBuffer is subtracted from the lifetime the grant response declares,
// so a token handed out here stays usable for the duration of one
// outbound request even if the upstream is about to expire it.
const expiryBuffer = 300 * time.Second

// defaultExpiresIn is assumed when the grant response omits expires_in.
const defaultExpiresIn = 3600

type accessToken struct {
	value     string
	expiresAt time.Time
}

// tokenSource caches the current Twitch access token and refreshes it
// on demand via the client-credentials grant. The check-then-refresh is
// a single critical section: concurrent callers racing past an expired
// token serialize on the mutex, and the late caller observes the token
// the first one just acquired instead of refreshing again.
type tokenSource struct {
	httpClient httpDoer
	authURL    string
	creds      Credentials
	now        func() time.Time

	mu      sync.Mutex
	current accessToken
}

func newTokenSource(httpClient httpDoer, authURL string, creds Credentials, now func() time.Time) *tokenSource {
	return &tokenSource{
		httpClient: httpClient,
		authURL:    authURL,
		creds:      creds,
		now:        now,
	}
}

// Token returns the cached token if its expiry is still in the future,
// otherwise acquires a fresh one and stores it.
func (ts *tokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.current.value != "" && ts.now().Before(ts.current.expiresAt) {
		return ts.current.value, nil
	}

	token, err := ts.acquire(ctx)
	if err != nil {
		return "", err
	}
	ts.current = token
	return token.value, nil
}

type grantResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (ts *tokenSource) acquire(ctx context.Context) (accessToken, error) {
	form := url.Values{}
	form.Set("client_id", ts.creds.ClientID)
	form.Set("client_secret", ts.creds.ClientSecret)
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return accessToken{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return accessToken{}, fmt.Errorf("igdb: token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return accessToken{}, &AuthError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var grant grantResponse
	if err := json.NewDecoder(resp.Body).Decode(&grant); err != nil {
		return accessToken{}, fmt.Errorf("igdb: decode token response: %w", err)
	}
	if grant.AccessToken == "" {
		return accessToken{}, fmt.Errorf("igdb: token response missing access_token")
	}

	expiresIn := grant.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = defaultExpiresIn
	}

	return accessToken{
		value:     grant.AccessToken,
		expiresAt: ts.now().Add(time.Duration(expiresIn)*time.Second - expiryBuffer),
	}, nil
}
