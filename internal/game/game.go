package game

import (
	"errors"
	"time"
)

// Game is a catalog entry, populated from IGDB metadata the first time a
// user adds it to a collection.
type Game struct {
	ID            string    `json:"id"`
	ExternalAPIID string    `json:"external_api_id"`
	Title         string    `json:"title"`
	Developer     *string   `json:"developer"`
	ReleaseDate   *Date     `json:"release_date"`
	CoverImageURL *string   `json:"cover_image_url"`
	Genres        []string  `json:"genres"`
	Platforms     []string  `json:"platforms"`
	Summary       *string   `json:"summary"`
	Rating        *float64  `json:"rating"` // IGDB aggregate, 0..100
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

var ErrNotFound = errors.New("game not found")
