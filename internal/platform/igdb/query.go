package igdb

import (
	"fmt"
	"strings"
)

// Games with fewer rating samples than this are excluded from Popular.
const popularityThreshold = 100

const searchFields = "name, cover.url, first_release_date, involved_companies.company.name, genres.name, platforms.name, summary"

const detailFields = searchFields + ", storyline, rating, rating_count"

const popularFields = "name, cover.url, first_release_date, involved_companies.company.name, genres.name, platforms.name, rating, rating_count"

// escapeTerm makes a caller-supplied string safe to embed inside a quoted
// Apicalypse string literal. The query body is interpreted server-side,
// so quotes and backslashes must be escaped and statement separators
// stripped to keep user input from terminating the literal.
func escapeTerm(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, `"`, `\"`)
	term = strings.ReplaceAll(term, ";", "")
	term = strings.ReplaceAll(term, "\n", " ")
	return term
}

func searchQuery(term string, limit int) string {
	return fmt.Sprintf("search \"%s\"; fields %s; limit %d;", escapeTerm(term), searchFields, limit)
}

func detailQuery(id int64) string {
	return fmt.Sprintf("fields %s; where id = %d;", detailFields, id)
}

func popularQuery(limit int) string {
	return fmt.Sprintf("fields %s; where rating_count > %d; sort rating desc; limit %d;", popularFields, popularityThreshold, limit)
}
