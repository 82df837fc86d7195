package igdb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, raw string) Record {
	t.Helper()
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))
	return rec
}

func TestNormalize_FullRecord(t *testing.T) {
	rec := decodeRecord(t, `{
		"id": 1942,
		"name": "The Witcher 3: Wild Hunt",
		"summary": "An open world RPG.",
		"rating": 93.4,
		"first_release_date": 1431993600,
		"cover": {"url": "//images.igdb.com/igdb/image/upload/t_thumb/co1wyy.jpg"},
		"involved_companies": [
			{"company": {"name": "CD Projekt RED"}},
			{"company": {"name": "Some Publisher"}}
		],
		"genres": [{"name": "Role-playing (RPG)"}, {"name": "Adventure"}],
		"platforms": [{"name": "PC (Microsoft Windows)"}, {"name": "PlayStation 4"}]
	}`)

	game := Normalize(rec)

	assert.Equal(t, "1942", game.ExternalAPIID)
	require.NotNil(t, game.Title)
	assert.Equal(t, "The Witcher 3: Wild Hunt", *game.Title)
	require.NotNil(t, game.Developer)
	assert.Equal(t, "CD Projekt RED", *game.Developer)
	require.NotNil(t, game.CoverImageURL)
	assert.Equal(t, "https://images.igdb.com/igdb/image/upload/t_cover_big/co1wyy.jpg", *game.CoverImageURL)
	require.NotNil(t, game.ReleaseDate)
	assert.Equal(t, "2015-05-19", *game.ReleaseDate)
	assert.Equal(t, []string{"Role-playing (RPG)", "Adventure"}, game.Genres)
	assert.Equal(t, []string{"PC (Microsoft Windows)", "PlayStation 4"}, game.Platforms)
	require.NotNil(t, game.Summary)
	assert.Equal(t, "An open world RPG.", *game.Summary)
	require.NotNil(t, game.Rating)
	assert.InDelta(t, 93.4, *game.Rating, 0.001)
}

func TestNormalize_IsTotalOverEmptyRecord(t *testing.T) {
	game := Normalize(Record{"id": float64(7)})

	assert.Equal(t, "7", game.ExternalAPIID)
	assert.Nil(t, game.Title)
	assert.Nil(t, game.Developer)
	assert.Nil(t, game.ReleaseDate)
	assert.Nil(t, game.CoverImageURL)
	assert.Nil(t, game.Summary)
	assert.Nil(t, game.Rating)
	assert.Empty(t, game.Genres)
	assert.Empty(t, game.Platforms)
}

func TestNormalize_MalformedNestedShapesDegrade(t *testing.T) {
	rec := decodeRecord(t, `{
		"id": 3,
		"involved_companies": [{"publisher": true}],
		"genres": [{"slug": "rpg"}, {"name": "Adventure"}, "not-an-object"],
		"platforms": "not-a-list",
		"cover": {"width": 600}
	}`)

	game := Normalize(rec)

	assert.Nil(t, game.Developer)
	assert.Nil(t, game.CoverImageURL)
	assert.Equal(t, []string{"Adventure"}, game.Genres, "entries without a name are skipped")
	assert.Empty(t, game.Platforms)
}

func TestNormalize_CoverURLTransform(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "scheme-relative thumbnail",
			in:   "//images.igdb.com/t_thumb/abc.jpg",
			want: "https://images.igdb.com/t_cover_big/abc.jpg",
		},
		{
			name: "already absolute",
			in:   "https://images.igdb.com/t_thumb/abc.jpg",
			want: "https://images.igdb.com/t_cover_big/abc.jpg",
		},
		{
			name: "no thumbnail variant",
			in:   "//images.igdb.com/t_720p/abc.jpg",
			want: "https://images.igdb.com/t_720p/abc.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeCoverURL(tt.in))
		})
	}
}

func TestNormalize_ReleaseDateIsUTC(t *testing.T) {
	game := Normalize(Record{"id": float64(1), "first_release_date": float64(1609459200)})

	require.NotNil(t, game.ReleaseDate)
	assert.Equal(t, "2021-01-01", *game.ReleaseDate)
}
