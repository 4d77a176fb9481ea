package view

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"novelverse/pkg/models"
)

const (
	maxCardGenres    = 3
	maxCardDescRunes = 150
	ellipsis         = "…"
)

type Mode string

const (
	ModeGrid Mode = "grid"
	ModeList Mode = "list"
)

// ParseMode falls back to grid for anything it does not know.
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == ModeList {
		return ModeList
	}
	return ModeGrid
}

type Badge struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
}

// Card is the display model of one novel summary.
type Card struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Description   string   `json:"description"`
	CoverImage    string   `json:"cover_image,omitempty"`
	Genres        []string `json:"genres"`
	MoreGenres    string   `json:"more_genres,omitempty"`
	Status        Badge    `json:"status"`
	Rating        string   `json:"rating"`
	Views         string   `json:"views"`
	Likes         string   `json:"likes"`
	ChaptersLabel string   `json:"chapters_label"`
	LastUpdated   string   `json:"last_updated"`
	IsBookmarked  bool     `json:"is_bookmarked"`
	DetailsURL    string   `json:"details_url"`
	ReadURL       string   `json:"read_url,omitempty"`
}

func NewCard(n models.NovelSummary) Card {
	genres, more := TruncateGenres(n.Genres, maxCardGenres)
	c := Card{
		ID:            n.ID,
		Title:         n.Title,
		Author:        n.Author,
		Description:   Truncate(n.Description, maxCardDescRunes),
		CoverImage:    n.CoverImage,
		Genres:        genres,
		MoreGenres:    more,
		Status:        StatusBadge(n.Status),
		Rating:        fmt.Sprintf("%.1f", n.Rating),
		Views:         Number(n.Views),
		Likes:         Number(n.Likes),
		ChaptersLabel: ChaptersLabel(n.Chapters),
		LastUpdated:   n.LastUpdated,
		IsBookmarked:  n.IsBookmarked,
		DetailsURL:    "/novel/" + n.ID,
	}
	if n.Chapters > 0 {
		c.ReadURL = ChapterURL(n.ID, 1)
	}
	return c
}

func Cards(novels []models.NovelSummary) []Card {
	out := make([]Card, 0, len(novels))
	for _, n := range novels {
		out = append(out, NewCard(n))
	}
	return out
}

func ChapterURL(novelID string, chapter int) string {
	return fmt.Sprintf("/read/%s/chapter/%d", novelID, chapter)
}

// TruncateGenres keeps the first max genres and labels the rest as "+N".
func TruncateGenres(genres []string, max int) ([]string, string) {
	if len(genres) <= max {
		return append([]string{}, genres...), ""
	}
	return append([]string{}, genres[:max]...), fmt.Sprintf("+%d", len(genres)-max)
}

func StatusBadge(s models.Status) Badge {
	switch s {
	case models.StatusOngoing:
		return Badge{Label: "Ongoing", Tone: "success"}
	case models.StatusCompleted:
		return Badge{Label: "Completed", Tone: "primary"}
	case models.StatusHiatus:
		return Badge{Label: "Hiatus", Tone: "warning"}
	}
	return Badge{Label: string(s), Tone: "muted"}
}

func ChaptersLabel(n int) string {
	if n == 1 {
		return "1 chapter"
	}
	return fmt.Sprintf("%s chapters", Number(n))
}

// Truncate cuts s to max runes, appending an ellipsis when shortened.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimRight(string(r[:max]), " ") + ellipsis
}

// Number formats n with grouping separators, e.g. 125,000.
func Number(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// Compact renders thousands and millions as 156K or 1.2M.
func Compact(n int) string {
	switch {
	case n >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000_000)) + "M"
	case n >= 1_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000)) + "K"
	}
	return fmt.Sprintf("%d", n)
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}

// Percent clamps a progress value for a progress bar.
func Percent(p int) int {
	return max(0, min(100, p))
}

// Ago renders t relative to now in the catalog's free-text style.
func Ago(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute") + " ago"
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour") + " ago"
	case d < 7*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day") + " ago"
	}
	return t.Format("Jan 2, 2006")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
