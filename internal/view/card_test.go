package view

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"novelverse/pkg/models"
)

func TestNewCard(t *testing.T) {
	n := models.NovelSummary{
		ID:          "1",
		Title:       "The Mystic Academy",
		Description: strings.Repeat("word ", 60),
		Genres:      []string{"Fantasy", "Magic", "Academy", "Coming of Age"},
		Rating:      4.8,
		Views:       125000,
		Chapters:    45,
		Status:      models.StatusOngoing,
	}
	c := NewCard(n)

	if len(c.Genres) != 3 || c.MoreGenres != "+1" {
		t.Fatalf("genres = %v more = %q, want 3 and +1", c.Genres, c.MoreGenres)
	}
	if c.Views != "125,000" {
		t.Fatalf("views = %q, want 125,000", c.Views)
	}
	if c.Rating != "4.8" {
		t.Fatalf("rating = %q", c.Rating)
	}
	if c.Status.Tone != "success" {
		t.Fatalf("tone = %q, want success", c.Status.Tone)
	}
	if c.ReadURL != "/read/1/chapter/1" || c.DetailsURL != "/novel/1" {
		t.Fatalf("urls = %q %q", c.DetailsURL, c.ReadURL)
	}
	if !strings.HasSuffix(c.Description, "…") || utf8.RuneCountInString(c.Description) > 151 {
		t.Fatalf("description not truncated: %q", c.Description)
	}
}

func TestNewCardWithoutChapters(t *testing.T) {
	c := NewCard(models.NovelSummary{ID: "9", Chapters: 0, Status: models.StatusHiatus})
	if c.ReadURL != "" {
		t.Fatalf("read url = %q, want empty", c.ReadURL)
	}
	if c.ChaptersLabel != "0 chapters" {
		t.Fatalf("label = %q", c.ChaptersLabel)
	}
	if c.Status.Tone != "warning" {
		t.Fatalf("tone = %q, want warning", c.Status.Tone)
	}
}

func TestLabels(t *testing.T) {
	if got := ChaptersLabel(1); got != "1 chapter" {
		t.Fatalf("ChaptersLabel(1) = %q", got)
	}
	if got := ChaptersLabel(1200); got != "1,200 chapters" {
		t.Fatalf("ChaptersLabel(1200) = %q", got)
	}
	for in, want := range map[int]string{156000: "156K", 2845: "2.8K", 999: "999", 1500000: "1.5M", 2000: "2K"} {
		if got := Compact(in); got != want {
			t.Fatalf("Compact(%d) = %q, want %q", in, got, want)
		}
	}
	for in, want := range map[int]int{-5: 0, 40: 40, 130: 100} {
		if got := Percent(in); got != want {
			t.Fatalf("Percent(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode("LIST") != ModeList || ParseMode("") != ModeGrid || ParseMode("tiles") != ModeGrid {
		t.Fatalf("unexpected mode parsing")
	}
}

func TestAgo(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	cases := map[time.Duration]string{
		10 * time.Second:    "just now",
		time.Minute:         "1 minute ago",
		5 * time.Hour:       "5 hours ago",
		48 * time.Hour:      "2 days ago",
		30 * 24 * time.Hour: "Feb 9, 2024",
	}
	for d, want := range cases {
		if got := Ago(now.Add(-d), now); got != want {
			t.Fatalf("Ago(-%v) = %q, want %q", d, got, want)
		}
	}
}
