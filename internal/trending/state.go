package trending

import (
	"net/url"
	"strings"

	"novelverse/internal/catalog"
	"novelverse/internal/genres"
	"novelverse/internal/view"
	"novelverse/pkg/models"
)

type ranking struct {
	novelID string
	rank    int
	change  string
	views   models.PeriodViews
}

var rankings = map[models.Timeframe][]ranking{
	models.TimeframeDaily: {
		{novelID: "3", rank: 1, change: "+2", views: models.DailyViews(2100)},
		{novelID: "1", rank: 2, change: "0", views: models.DailyViews(1850)},
	},
	models.TimeframeWeekly: {
		{novelID: "1", rank: 1, change: "+1", views: models.WeeklyViews(18500)},
		{novelID: "3", rank: 2, change: "-1", views: models.WeeklyViews(15600)},
		{novelID: "4", rank: 3, change: "+2", views: models.WeeklyViews(12300)},
		{novelID: "2", rank: 4, change: "-2", views: models.WeeklyViews(8900)},
	},
	models.TimeframeMonthly: {
		{novelID: "3", rank: 1, change: "0", views: models.MonthlyViews(65000)},
		{novelID: "1", rank: 2, change: "+1", views: models.MonthlyViews(45000)},
	},
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var TimeframeOptions = []Option{
	{Value: string(models.TimeframeDaily), Label: "Today"},
	{Value: string(models.TimeframeWeekly), Label: "This Week"},
	{Value: string(models.TimeframeMonthly), Label: "This Month"},
}

var CategoryOptions = []Option{
	{Value: "all", Label: "All Genres"},
	{Value: "fantasy", Label: "Fantasy"},
	{Value: "romance", Label: "Romance"},
	{Value: "scifi", Label: "Sci-Fi"},
	{Value: "action", Label: "Action"},
}

type Highlight struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Novel string `json:"novel"`
}

var highlights = []Highlight{
	{Label: "Most Viewed Today", Value: "2.1K views", Novel: "Dragon's Crown"},
	{Label: "Fastest Growing", Value: "+240%", Novel: "Starlit Dreams"},
	{Label: "Top Rated", Value: "4.9/5", Novel: "Dragon's Crown"},
	{Label: "Most Discussed", Value: "89 reviews", Novel: "The Mystic Academy"},
}

// State is the trending page controller.
type State struct {
	Timeframe models.Timeframe
	Category  string
}

func NewState(q url.Values) *State {
	tf := models.Timeframe(strings.ToLower(strings.TrimSpace(q.Get("timeframe"))))
	if tf == "" {
		tf = models.TimeframeWeekly
	}
	cat := strings.ToLower(strings.TrimSpace(q.Get("category")))
	if cat == "" {
		cat = catalog.AllGenres
	}
	return &State{Timeframe: tf, Category: cat}
}

// GenreFilter maps the category to a catalog genre filter through the genre
// directory. Unknown categories filter on their raw value.
func (s *State) GenreFilter() string {
	if s.Category == catalog.AllGenres {
		return catalog.AllGenres
	}
	if g, ok := genres.Lookup(s.Category); ok {
		return g.Name
	}
	return s.Category
}

// Entries returns the ranking for the timeframe in rank order. An unknown
// timeframe has no entries.
func (s *State) Entries(all []models.NovelSummary) []models.TrendingEntry {
	byID := make(map[string]models.NovelSummary, len(all))
	for _, n := range all {
		byID[n.ID] = n
	}

	rs := rankings[s.Timeframe]
	ranked := make([]models.NovelSummary, 0, len(rs))
	meta := make(map[string]ranking, len(rs))
	for _, r := range rs {
		n, ok := byID[r.novelID]
		if !ok {
			continue
		}
		ranked = append(ranked, n)
		meta[n.ID] = r
	}

	// no sort key: rank order is kept
	filtered := catalog.Apply(ranked, catalog.Criteria{Genre: s.GenreFilter()})
	out := make([]models.TrendingEntry, 0, len(filtered))
	for _, n := range filtered {
		r := meta[n.ID]
		out = append(out, models.TrendingEntry{
			NovelSummary: n,
			Rank:         r.rank,
			RankChange:   r.change,
			PeriodViews:  r.views,
		})
	}
	return out
}

// RankTone colours a rank change: up, down or steady.
func RankTone(change string) string {
	switch {
	case strings.HasPrefix(change, "+"):
		return "up"
	case strings.HasPrefix(change, "-"):
		return "down"
	}
	return "steady"
}

type Row struct {
	Rank        int       `json:"rank"`
	RankChange  string    `json:"rank_change"`
	Tone        string    `json:"tone"`
	PeriodViews string    `json:"period_views"`
	Card        view.Card `json:"card"`
}

type Page struct {
	Timeframe        models.Timeframe `json:"timeframe"`
	Category         string           `json:"category"`
	TimeframeOptions []Option         `json:"timeframe_options"`
	CategoryOptions  []Option         `json:"category_options"`
	Highlights       []Highlight      `json:"highlights"`
	Entries          []Row            `json:"entries"`
	Empty            bool             `json:"empty"`
}

func (s *State) Page(all []models.NovelSummary) Page {
	entries := s.Entries(all)
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		row := Row{
			Rank:       e.Rank,
			RankChange: e.RankChange,
			Tone:       RankTone(e.RankChange),
			Card:       view.NewCard(e.NovelSummary),
		}
		if e.PeriodViews != nil {
			row.PeriodViews = view.Number(e.PeriodViews.Count())
		}
		rows = append(rows, row)
	}
	return Page{
		Timeframe:        s.Timeframe,
		Category:         s.Category,
		TimeframeOptions: TimeframeOptions,
		CategoryOptions:  CategoryOptions,
		Highlights:       append([]Highlight(nil), highlights...),
		Entries:          rows,
		Empty:            len(rows) == 0,
	}
}
