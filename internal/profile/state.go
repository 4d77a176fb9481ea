package profile

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"novelverse/internal/view"
	"novelverse/pkg/models"
)

// Initials takes the first letter of each word of a display name.
func Initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// Thousands renders n rounded to the nearest thousand, e.g. 156K.
func Thousands(n int) string {
	return fmt.Sprintf("%dK", int(math.Round(float64(n)/1000)))
}

type Tile struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func Tiles(s models.UserStats) []Tile {
	return []Tile{
		{Label: "Novels Read", Value: view.Number(s.NovelsRead)},
		{Label: "Bookmarked", Value: view.Number(s.Bookmarked)},
		{Label: "Chapters Read", Value: view.Number(s.ChaptersRead)},
		{Label: "Words Written", Value: Thousands(s.WordsWritten)},
	}
}

type HistoryRow struct {
	models.HistoryItem
	ProgressBar int    `json:"progress_bar"`
	Position    string `json:"position"`
	ContinueURL string `json:"continue_url"`
}

type Page struct {
	Profile    models.UserProfile `json:"profile"`
	Initials   string             `json:"initials"`
	Handle     string             `json:"handle"`
	Tiles      []Tile             `json:"tiles"`
	History    []HistoryRow       `json:"history"`
	Bookmarked []view.Card        `json:"bookmarked"`
	Editing    bool               `json:"editing"`
	EditLabel  string             `json:"edit_label"`
}

// State carries the edit-profile toggle.
type State struct {
	Editing bool
}

func (s *State) ToggleEditing() { s.Editing = !s.Editing }

func (s *State) Page(u models.UserProfile) Page {
	rows := make([]HistoryRow, 0, len(u.ReadingHistory))
	for _, h := range u.ReadingHistory {
		rows = append(rows, HistoryRow{
			HistoryItem: h,
			ProgressBar: view.Percent(h.Progress),
			Position:    fmt.Sprintf("Chapter %d of %d", h.Chapter, h.TotalChapters),
			ContinueURL: view.ChapterURL(h.NovelID, max(1, h.Chapter)),
		})
	}
	p := Page{
		Profile:    u,
		Initials:   Initials(u.DisplayName),
		Handle:     "@" + u.Username,
		Tiles:      Tiles(u.Stats),
		History:    rows,
		Bookmarked: view.Cards(u.Bookmarked),
		Editing:    s.Editing,
		EditLabel:  "Edit Profile",
	}
	if s.Editing {
		p.EditLabel = "Save Changes"
	}
	return p
}
