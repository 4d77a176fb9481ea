package dashboard

import (
	"fmt"
	"strings"
	"time"

	"novelverse/internal/feed"
	"novelverse/internal/view"
	"novelverse/pkg/models"
)

// liveActivityLimit caps how many feed events are merged into the activity tab.
const liveActivityLimit = 10

// Feed is the slice of the activity hub the dashboard reads.
type Feed interface {
	Recent(n int) []feed.Event
}

type NewNovelForm struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Genres        []string `json:"genres"`
	ContentRating string   `json:"content_rating"`
	Language      string   `json:"language"`
}

func emptyForm() NewNovelForm {
	return NewNovelForm{Genres: []string{}, Language: "English"}
}

// State is the dashboard controller: the new-novel form and its visibility.
type State struct {
	ShowForm bool
	Form     NewNovelForm
}

func NewState(show bool) *State {
	return &State{ShowForm: show, Form: emptyForm()}
}

func (s *State) OpenForm()  { s.ShowForm = true }
func (s *State) CloseForm() { s.ShowForm = false }

// Submit hands back the draft and clears and hides the form.
func (s *State) Submit() models.NovelDraft {
	d := models.NovelDraft{
		Title:         strings.TrimSpace(s.Form.Title),
		Description:   s.Form.Description,
		Genres:        append([]string{}, s.Form.Genres...),
		ContentRating: s.Form.ContentRating,
		Language:      s.Form.Language,
		Status:        models.StatusOngoing,
	}
	s.Form = emptyForm()
	s.ShowForm = false
	return d
}

type Tile struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change,omitempty"`
}

func Tiles(a models.AuthorData) []Tile {
	return []Tile{
		{Label: "Total Views", Value: view.Number(a.Stats.TotalViews), Change: a.Stats.MonthlyGrowth},
		{Label: "Total Likes", Value: view.Number(a.Stats.TotalLikes)},
		{Label: "Bookmarks", Value: view.Number(a.Stats.TotalBookmarks)},
		{Label: "Followers", Value: view.Number(a.Stats.Followers)},
		{Label: "Avg Rating", Value: fmt.Sprintf("%.1f", a.Stats.AverageRating)},
		{Label: "Novels", Value: fmt.Sprintf("%d", len(a.Novels))},
	}
}

func activityType(eventType string) string {
	switch eventType {
	case feed.TypeNovelCreated:
		return "novel"
	case feed.TypeChapterCreated:
		return "chapter"
	case feed.TypeReviewCreated:
		return "review"
	}
	return "update"
}

// Activities puts live feed events, newest first, ahead of the seeded history.
func Activities(seed []models.Activity, events []feed.Event, now time.Time) []models.Activity {
	out := make([]models.Activity, 0, len(events)+len(seed))
	for _, ev := range events {
		out = append(out, models.Activity{
			Type:    activityType(ev.Type),
			Message: ev.Message,
			Time:    view.Ago(ev.At, now),
		})
	}
	return append(out, seed...)
}

type NovelRow struct {
	models.AuthoredNovel
	Status       view.Badge `json:"status"`
	Views        string     `json:"views"`
	MonthlyViews string     `json:"monthly_views"`
	EditURL      string     `json:"edit_url"`
	DetailsURL   string     `json:"details_url"`
}

type Page struct {
	Welcome    string            `json:"welcome"`
	Tiles      []Tile            `json:"tiles"`
	Novels     []NovelRow        `json:"novels"`
	Activities []models.Activity `json:"activities"`
	ShowForm   bool              `json:"show_form"`
	Form       NewNovelForm      `json:"form"`
}

func (s *State) Page(a models.AuthorData, f Feed, now time.Time) Page {
	var events []feed.Event
	if f != nil {
		events = f.Recent(liveActivityLimit)
	}
	rows := make([]NovelRow, 0, len(a.Novels))
	for _, n := range a.Novels {
		rows = append(rows, NovelRow{
			AuthoredNovel: n,
			Status:        view.StatusBadge(n.Status),
			Views:         view.Number(n.TotalViews),
			MonthlyViews:  view.Number(n.MonthlyViews),
			EditURL:       "/write?tab=chapter&novel=" + n.ID,
			DetailsURL:    "/novel/" + n.ID,
		})
	}
	return Page{
		Welcome:    fmt.Sprintf("Welcome back, %s! Manage your novels and track your progress.", a.Name),
		Tiles:      Tiles(a),
		Novels:     rows,
		Activities: Activities(a.RecentActivity, events, now),
		ShowForm:   s.ShowForm,
		Form:       s.Form,
	}
}
