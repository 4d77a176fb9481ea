package catalog

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"novelverse/pkg/models"
)

type SortKey string

const (
	SortPopular      SortKey = "popular"
	SortRating       SortKey = "rating"
	SortRecent       SortKey = "recent"
	SortAlphabetical SortKey = "alphabetical"
)

// AllGenres disables the genre filter.
const AllGenres = "all"

// Criteria selects and orders a novel list. The zero value keeps everything
// in input order.
type Criteria struct {
	Query string
	Genre string
	Sort  SortKey
}

// ParseSortKey normalizes s. Unknown keys are returned as-is and sort nothing.
func ParseSortKey(s string, def SortKey) SortKey {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def
	}
	return SortKey(s)
}

// Apply returns the novels matching both the query and the genre, ordered by
// c.Sort. The input slice is left untouched.
func Apply(novels []models.NovelSummary, c Criteria) []models.NovelSummary {
	q := strings.ToLower(strings.TrimSpace(c.Query))
	out := make([]models.NovelSummary, 0, len(novels))
	for _, n := range novels {
		if q != "" && !MatchesQuery(n, q) {
			continue
		}
		if !MatchesGenre(n, c.Genre) {
			continue
		}
		out = append(out, n)
	}
	Sort(out, c.Sort)
	return out
}

// MatchesQuery reports whether the lowercased query q occurs in the title,
// author, description or any genre.
func MatchesQuery(n models.NovelSummary, q string) bool {
	if strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Author), q) ||
		strings.Contains(strings.ToLower(n.Description), q) {
		return true
	}
	for _, g := range n.Genres {
		if strings.Contains(strings.ToLower(g), q) {
			return true
		}
	}
	return false
}

func MatchesGenre(n models.NovelSummary, genre string) bool {
	genre = strings.TrimSpace(genre)
	if genre == "" || strings.EqualFold(genre, AllGenres) {
		return true
	}
	for _, g := range n.Genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}

// Sort orders novels in place. The sort is stable; unknown keys leave the
// order unchanged.
func Sort(novels []models.NovelSummary, key SortKey) {
	switch key {
	case SortPopular:
		slices.SortStableFunc(novels, func(a, b models.NovelSummary) int {
			return cmp.Compare(b.Views, a.Views)
		})
	case SortRating:
		slices.SortStableFunc(novels, func(a, b models.NovelSummary) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case SortRecent:
		slices.SortStableFunc(novels, func(a, b models.NovelSummary) int {
			return CompareDates(b.LastUpdated, a.LastUpdated)
		})
	case SortAlphabetical:
		cmpTitle := TitleComparator()
		slices.SortStableFunc(novels, func(a, b models.NovelSummary) int {
			return cmpTitle(a.Title, b.Title)
		})
	}
}

// TitleComparator returns a locale-aware string comparison. A collator is not
// safe for concurrent use, so callers get a fresh one.
func TitleComparator() func(a, b string) int {
	col := collate.New(language.English)
	return col.CompareString
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseDate parses the absolute date forms seen in catalog data. Relative
// text such as "2 days ago" does not parse.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CompareDates orders two date strings ascending. When either side does not
// parse they compare equal.
func CompareDates(a, b string) int {
	ta, okA := ParseDate(a)
	tb, okB := ParseDate(b)
	if !okA || !okB {
		return 0
	}
	return ta.Compare(tb)
}
