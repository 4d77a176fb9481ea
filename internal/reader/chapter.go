package reader

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"novelverse/internal/novel"
	"novelverse/internal/view"
	"novelverse/pkg/models"
)

//go:embed invitation.txt
var sampleBody string

// sampleWordCount is the published word count of the sample chapter.
const sampleWordCount = 1247

var ErrChapterOutOfRange = errors.New("chapter out of range")

// Load builds chapter number of n. Every chapter currently carries the
// sample body.
func Load(n models.NovelSummary, number int) (*models.Chapter, error) {
	if number < 1 || number > n.Chapters {
		return nil, fmt.Errorf("load chapter %d of %s: %w", number, n.ID, ErrChapterOutOfRange)
	}
	title := fmt.Sprintf("Chapter %d", number)
	if t, ok := novel.ListedTitle(n.ID, number); ok {
		title += ": " + t
	}
	return &models.Chapter{
		NovelID:       n.ID,
		NovelTitle:    n.Title,
		Author:        n.Author,
		Number:        number,
		Title:         title,
		Content:       strings.TrimSpace(sampleBody),
		WordCount:     sampleWordCount,
		TotalChapters: n.Chapters,
	}, nil
}

// Paragraphs splits chapter text on blank lines.
func Paragraphs(content string) []string {
	var out []string
	for _, p := range strings.Split(content, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type NavLink struct {
	URL      string `json:"url,omitempty"`
	Disabled bool   `json:"disabled"`
}

// Navigation returns the previous and next links, disabled at either end.
func Navigation(ch *models.Chapter) (prev, next NavLink) {
	prev.Disabled = ch.Number <= 1
	if !prev.Disabled {
		prev.URL = view.ChapterURL(ch.NovelID, ch.Number-1)
	}
	next.Disabled = ch.Number >= ch.TotalChapters
	if !next.Disabled {
		next.URL = view.ChapterURL(ch.NovelID, ch.Number+1)
	}
	return prev, next
}

type IndexEntry struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Current bool   `json:"current"`
}

// Index lists every chapter for the chapter sheet.
func Index(ch *models.Chapter) []IndexEntry {
	out := make([]IndexEntry, 0, ch.TotalChapters)
	for i := 1; i <= ch.TotalChapters; i++ {
		out = append(out, IndexEntry{
			Number:  i,
			Title:   novel.ChapterTitle(ch.NovelID, i),
			URL:     view.ChapterURL(ch.NovelID, i),
			Current: i == ch.Number,
		})
	}
	return out
}

type Page struct {
	Chapter     *models.Chapter `json:"chapter"`
	Paragraphs  []string        `json:"paragraphs"`
	Position    string          `json:"position"`
	Words       string          `json:"words"`
	Typography  Typography      `json:"typography"`
	FontClass   string          `json:"font_class"`
	FontOptions []FontOption    `json:"font_options"`
	Prev        NavLink         `json:"prev"`
	Next        NavLink         `json:"next"`
	Index       []IndexEntry    `json:"index"`
	DetailsURL  string          `json:"details_url"`
}

func BuildPage(ch *models.Chapter, t Typography) Page {
	prev, next := Navigation(ch)
	return Page{
		Chapter:     ch,
		Paragraphs:  Paragraphs(ch.Content),
		Position:    fmt.Sprintf("Chapter %d of %d", ch.Number, ch.TotalChapters),
		Words:       view.Number(ch.WordCount) + " words",
		Typography:  t,
		FontClass:   FontClass(t.FontFamily),
		FontOptions: FontOptions,
		Prev:        prev,
		Next:        next,
		Index:       Index(ch),
		DetailsURL:  "/novel/" + ch.NovelID,
	}
}
