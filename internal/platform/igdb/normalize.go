package igdb

import (
	"strconv"
	"strings"
	"time"
)

// Game is the flat, persistence-ready shape produced from a raw record.
// Optional upstream fields become nil pointers or empty slices.
type Game struct {
	ExternalAPIID string   `json:"external_api_id"`
	Title         *string  `json:"title"`
	Developer     *string  `json:"developer"`
	ReleaseDate   *string  `json:"release_date"`
	CoverImageURL *string  `json:"cover_image_url"`
	Genres        []string `json:"genres"`
	Platforms     []string `json:"platforms"`
	Summary       *string  `json:"summary"`
	Rating        *float64 `json:"rating"`
}

// Normalize flattens a raw IGDB record. It is total: absent or malformed
// optional fields degrade to nil/empty values, never to an error.
func Normalize(rec Record) Game {
	game := Game{
		Title:     strField(rec, "name"),
		Summary:   strField(rec, "summary"),
		Genres:    namesOf(rec.list("genres")),
		Platforms: namesOf(rec.list("platforms")),
	}

	if id, ok := rec.number("id"); ok {
		game.ExternalAPIID = strconv.FormatInt(int64(id), 10)
	}

	if rating, ok := rec.number("rating"); ok {
		game.Rating = &rating
	}

	// Developer is the company of the first involved-companies entry.
	if companies := rec.list("involved_companies"); len(companies) > 0 {
		if company := companies[0].object("company"); company != nil {
			game.Developer = strField(company, "name")
		}
	}

	if cover := rec.object("cover"); cover != nil {
		if rawURL, ok := cover.str("url"); ok {
			coverURL := normalizeCoverURL(rawURL)
			game.CoverImageURL = &coverURL
		}
	}

	if ts, ok := rec.number("first_release_date"); ok {
		released := time.Unix(int64(ts), 0).UTC().Format("2006-01-02")
		game.ReleaseDate = &released
	}

	return game
}

// normalizeCoverURL swaps the thumbnail size variant for the large cover
// and makes scheme-relative URLs absolute. IGDB hands out URLs like
// "//images.igdb.com/igdb/image/upload/t_thumb/abc.jpg".
func normalizeCoverURL(raw string) string {
	coverURL := strings.Replace(raw, "t_thumb", "t_cover_big", 1)
	if !strings.Contains(coverURL, "://") {
		coverURL = "https:" + coverURL
	}
	return coverURL
}

func strField(rec Record, key string) *string {
	if v, ok := rec.str(key); ok {
		return &v
	}
	return nil
}

func namesOf(items []Record) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		if name, ok := item.str("name"); ok {
			names = append(names, name)
		}
	}
	return names
}
