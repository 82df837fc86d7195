package game

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gamehub/internal/platform/igdb"
)

const (
	defaultSearchLimit  = 10
	defaultPopularLimit = 20
	maxListLimit        = 50
)

type Service struct {
	repo     Repository
	metadata MetadataClient
}

func NewService(repo Repository, metadata MetadataClient) *Service {
	return &Service{repo: repo, metadata: metadata}
}

// Search proxies a free-text search to the catalog service.
func (s *Service) Search(ctx context.Context, term string, limit int) ([]igdb.Game, error) {
	return s.metadata.Search(ctx, term, clampLimit(limit, defaultSearchLimit))
}

// Popular proxies the popularity-ranked list from the catalog service.
func (s *Service) Popular(ctx context.Context, limit int) ([]igdb.Game, error) {
	return s.metadata.Popular(ctx, clampLimit(limit, defaultPopularLimit))
}

// Lookup fetches one game's metadata by its IGDB id without persisting it.
func (s *Service) Lookup(ctx context.Context, externalID string) (igdb.Game, error) {
	igdbID, err := parseExternalID(externalID)
	if err != nil {
		return igdb.Game{}, err
	}
	meta, err := s.metadata.GetByID(ctx, igdbID)
	if err != nil {
		if errors.Is(err, igdb.ErrNotFound) {
			return igdb.Game{}, ErrNotFound
		}
		return igdb.Game{}, err
	}
	return meta, nil
}

// ImportByExternalID returns the locally stored game for an IGDB id,
// fetching and persisting its metadata on first use.
func (s *Service) ImportByExternalID(ctx context.Context, externalID string) (Game, error) {
	stored, err := s.repo.GetByExternalAPIID(ctx, externalID)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Game{}, err
	}

	meta, err := s.Lookup(ctx, externalID)
	if err != nil {
		return Game{}, err
	}

	imported := fromMetadata(meta)
	if err := s.repo.Upsert(ctx, &imported); err != nil {
		return Game{}, err
	}
	return imported, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Game, error) {
	return s.repo.GetByID(ctx, id)
}

func fromMetadata(meta igdb.Game) Game {
	title := ""
	if meta.Title != nil {
		title = *meta.Title
	}
	var released *Date
	if meta.ReleaseDate != nil {
		released = ParseDate(*meta.ReleaseDate)
	}
	return Game{
		ExternalAPIID: meta.ExternalAPIID,
		Title:         title,
		Developer:     meta.Developer,
		ReleaseDate:   released,
		CoverImageURL: meta.CoverImageURL,
		Genres:        meta.Genres,
		Platforms:     meta.Platforms,
		Summary:       meta.Summary,
		Rating:        meta.Rating,
	}
}

func parseExternalID(externalID string) (int64, error) {
	igdbID, err := strconv.ParseInt(externalID, 10, 64)
	if err != nil || igdbID <= 0 {
		return 0, fmt.Errorf("invalid external game id %q: %w", externalID, ErrNotFound)
	}
	return igdbID, nil
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
