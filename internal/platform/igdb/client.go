package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.igdb.com/v4"
	defaultAuthURL = "https://id.twitch.tv/oauth2/token"

	defaultHTTPTimeout = 15 * time.Second
	maxErrorBodyBytes  = 2048
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches IGDB and where it reads its
// Twitch credentials from.
type Config struct {
	ClientIDFile     string
	ClientSecretFile string

	// Optional overrides, used by tests.
	BaseURL    string
	AuthURL    string
	HTTPClient *http.Client
	Secrets    SecretSource
	Now        func() time.Time
}

// Client queries the IGDB game catalog. It owns the process-wide token
// cache; everything else it does is stateless.
type Client struct {
	httpClient httpDoer
	baseURL    string
	clientID   string
	tokens     *tokenSource
}

// NewClient reads the credentials and constructs a client. It fails fast
// when either credential file is unset or unreadable.
func NewClient(cfg Config) (*Client, error) {
	secrets := cfg.Secrets
	if secrets == nil {
		secrets = FileSecrets{}
	}
	creds, err := loadCredentials(secrets, cfg.ClientIDFile, cfg.ClientSecretFile)
	if err != nil {
		return nil, err
	}

	httpClient := httpDoer(cfg.HTTPClient)
	if cfg.HTTPClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    normalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		clientID:   creds.ClientID,
		tokens:     newTokenSource(httpClient, normalizeBaseURL(cfg.AuthURL, defaultAuthURL), creds, now),
	}, nil
}

// Search finds games whose title matches the term. At most limit
// normalized records are returned, in upstream order.
func (c *Client) Search(ctx context.Context, term string, limit int) ([]Game, error) {
	records, err := c.execute(ctx, "games", searchQuery(term, limit))
	if err != nil {
		return nil, err
	}
	return normalizeAll(records), nil
}

// GetByID fetches a single game by its IGDB id. An empty upstream result
// is reported as ErrNotFound.
func (c *Client) GetByID(ctx context.Context, id int64) (Game, error) {
	records, err := c.execute(ctx, "games", detailQuery(id))
	if err != nil {
		return Game{}, err
	}
	if len(records) == 0 {
		return Game{}, ErrNotFound
	}
	return Normalize(records[0]), nil
}

// Popular lists highly rated games with more than 100 rating samples,
// sorted by rating descending.
func (c *Client) Popular(ctx context.Context, limit int) ([]Game, error) {
	records, err := c.execute(ctx, "games", popularQuery(limit))
	if err != nil {
		return nil, err
	}
	return normalizeAll(records), nil
}

// execute issues one authenticated query and returns the raw records.
// Normalization is a separate step so callers needing raw data are not
// forced through it.
func (c *Client) execute(ctx context.Context, collection, query string) ([]Record, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+collection, strings.NewReader(query))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("igdb: query request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &QueryError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("igdb: decode query response: %w", err)
	}
	return records, nil
}

func normalizeAll(records []Record) []Game {
	games := make([]Game, 0, len(records))
	for _, rec := range records {
		games = append(games, Normalize(rec))
	}
	return games
}

func normalizeBaseURL(raw, fallback string) string {
	if raw == "" {
		raw = fallback
	}
	return strings.TrimSuffix(raw, "/")
}
