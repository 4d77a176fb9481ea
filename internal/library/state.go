package library

import (
	"net/url"
	"slices"
	"strings"

	"novelverse/internal/catalog"
	"novelverse/internal/view"
	"novelverse/pkg/models"
)

type Filter string

const (
	FilterAll        Filter = "all"
	FilterReading    Filter = "reading"
	FilterCompleted  Filter = "completed"
	FilterBookmarked Filter = "bookmarked"
)

type SortKey string

const (
	SortRecent       SortKey = "recent"
	SortAlphabetical SortKey = "alphabetical"
	SortProgress     SortKey = "progress"
	SortRating       SortKey = "rating"
)

// State is the library page controller.
type State struct {
	Search   string
	Filter   Filter
	Sort     SortKey
	Mode     view.Mode
	Selected []string
}

func NewState(q url.Values) *State {
	f := Filter(strings.ToLower(strings.TrimSpace(q.Get("status"))))
	if f == "" {
		f = FilterAll
	}
	sk := SortKey(strings.ToLower(strings.TrimSpace(q.Get("sort"))))
	if sk == "" {
		sk = SortRecent
	}
	var selected []string
	for _, raw := range q["selected"] {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" && !slices.Contains(selected, id) {
				selected = append(selected, id)
			}
		}
	}
	return &State{
		Search:   q.Get("search"),
		Filter:   f,
		Sort:     sk,
		Mode:     view.ParseMode(q.Get("view")),
		Selected: selected,
	}
}

// Matches reports whether e passes the status filter. An unknown filter
// leaves the list unfiltered, like FilterAll.
func (f Filter) Matches(e models.LibraryEntry) bool {
	switch f {
	case FilterAll:
		return true
	case FilterReading:
		return e.ReadProgress > 0 && e.ReadProgress < 100
	case FilterCompleted:
		return e.ReadProgress == 100
	case FilterBookmarked:
		return e.IsBookmarked && e.ReadProgress == 0
	}
	return true
}

// Filtered returns the entries matching search and status, sorted. The input
// is not modified.
func (s *State) Filtered(entries []models.LibraryEntry) []models.LibraryEntry {
	q := strings.ToLower(s.Search)
	out := make([]models.LibraryEntry, 0, len(entries))
	for _, e := range entries {
		if q != "" && !strings.Contains(strings.ToLower(e.Title), q) && !strings.Contains(strings.ToLower(e.Author), q) {
			continue
		}
		if !s.Filter.Matches(e) {
			continue
		}
		out = append(out, e)
	}
	sortEntries(out, s.Sort)
	return out
}

func sortEntries(entries []models.LibraryEntry, key SortKey) {
	var cmp func(a, b models.LibraryEntry) int
	switch key {
	case SortRecent:
		cmp = func(a, b models.LibraryEntry) int { return catalog.CompareDates(b.LastRead, a.LastRead) }
	case SortAlphabetical:
		titles := catalog.TitleComparator()
		cmp = func(a, b models.LibraryEntry) int { return titles(a.Title, b.Title) }
	case SortProgress:
		cmp = func(a, b models.LibraryEntry) int { return b.ReadProgress - a.ReadProgress }
	case SortRating:
		cmp = func(a, b models.LibraryEntry) int {
			switch {
			case a.Rating > b.Rating:
				return -1
			case a.Rating < b.Rating:
				return 1
			}
			return 0
		}
	default:
		return
	}
	slices.SortStableFunc(entries, cmp)
}

func (s *State) IsSelected(id string) bool {
	return slices.Contains(s.Selected, id)
}

// ToggleSelect adds or removes one novel from the selection.
func (s *State) ToggleSelect(id string) {
	if i := slices.Index(s.Selected, id); i >= 0 {
		s.Selected = slices.Delete(s.Selected, i, i+1)
		return
	}
	s.Selected = append(s.Selected, id)
}

// ToggleSelectAll selects every filtered entry, or clears the selection when
// all of them are already selected.
func (s *State) ToggleSelectAll(filtered []models.LibraryEntry) {
	if len(filtered) > 0 && len(s.Selected) == len(filtered) {
		s.Selected = nil
		return
	}
	s.Selected = make([]string, 0, len(filtered))
	for _, e := range filtered {
		s.Selected = append(s.Selected, e.ID)
	}
}

type Stats struct {
	Total      int `json:"total"`
	Reading    int `json:"reading"`
	Completed  int `json:"completed"`
	Bookmarked int `json:"bookmarked"`
}

// ComputeStats counts over the whole library, not the filtered view.
func ComputeStats(entries []models.LibraryEntry) Stats {
	st := Stats{Total: len(entries)}
	for _, e := range entries {
		if FilterReading.Matches(e) {
			st.Reading++
		}
		if FilterCompleted.Matches(e) {
			st.Completed++
		}
		if e.IsBookmarked {
			st.Bookmarked++
		}
	}
	return st
}

type Item struct {
	Card           view.Card `json:"card"`
	CurrentChapter int       `json:"current_chapter"`
	Progress       int       `json:"progress"`
	LastRead       string    `json:"last_read"`
	CompletedDate  string    `json:"completed_date,omitempty"`
	ContinueURL    string    `json:"continue_url"`
	Selected       bool      `json:"selected"`
}

type Page struct {
	Search   string    `json:"search"`
	Status   Filter    `json:"status"`
	Sort     SortKey   `json:"sort"`
	View     view.Mode `json:"view"`
	Stats    Stats     `json:"stats"`
	Items    []Item    `json:"items"`
	Selected []string  `json:"selected"`
	Empty    bool      `json:"empty"`
}

func (s *State) Page(entries []models.LibraryEntry) Page {
	filtered := s.Filtered(entries)
	items := make([]Item, 0, len(filtered))
	for _, e := range filtered {
		next := max(1, e.CurrentChapter)
		items = append(items, Item{
			Card:           view.NewCard(e.NovelSummary),
			CurrentChapter: e.CurrentChapter,
			Progress:       view.Percent(e.ReadProgress),
			LastRead:       e.LastRead,
			CompletedDate:  e.CompletedDate,
			ContinueURL:    view.ChapterURL(e.ID, next),
			Selected:       s.IsSelected(e.ID),
		})
	}
	selected := s.Selected
	if selected == nil {
		selected = []string{}
	}
	return Page{
		Search:   s.Search,
		Status:   s.Filter,
		Sort:     s.Sort,
		View:     s.Mode,
		Stats:    ComputeStats(entries),
		Items:    items,
		Selected: selected,
		Empty:    len(items) == 0,
	}
}
