package igdb

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup by IGDB id matches no game.
var ErrNotFound = errors.New("igdb: game not found")

// AuthError reports a non-200 response from the Twitch token endpoint.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("igdb: token request failed with status %d: %s", e.StatusCode, e.Body)
}

// QueryError reports a non-200 response from the IGDB query endpoint.
type QueryError struct {
	StatusCode int
	Body       string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("igdb: query failed with status %d: %s", e.StatusCode, e.Body)
}
