package novel

import (
	"net/url"
	"strconv"

	"novelverse/internal/reviews"
	"novelverse/internal/view"
	"novelverse/pkg/models"
)

// State holds the details page toggles. The bookmark starts on.
type State struct {
	Bookmarked bool
	Following  bool
}

func NewState(q url.Values) *State {
	return &State{
		Bookmarked: parseBool(q.Get("bookmarked"), true),
		Following:  parseBool(q.Get("following"), false),
	}
}

func (s *State) ToggleBookmark() { s.Bookmarked = !s.Bookmarked }
func (s *State) ToggleFollow()   { s.Following = !s.Following }

type ReviewItem struct {
	models.Review
	Stars string `json:"stars"`
}

type Crumb struct {
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
}

type Page struct {
	Novel           models.NovelDetail      `json:"novel"`
	Status          view.Badge              `json:"status"`
	Rating          string                  `json:"rating"`
	Views           string                  `json:"views"`
	Likes           string                  `json:"likes"`
	Bookmarks       string                  `json:"bookmarks"`
	Words           string                  `json:"words"`
	Breadcrumb      []Crumb                 `json:"breadcrumb"`
	StartReadingURL string                  `json:"start_reading_url,omitempty"`
	Bookmarked      bool                    `json:"bookmarked"`
	BookmarkLabel   string                  `json:"bookmark_label"`
	Following       bool                    `json:"following"`
	FollowLabel     string                  `json:"follow_label"`
	Chapters        []models.ChapterListing `json:"chapters"`
	Reviews         []ReviewItem            `json:"reviews"`
}

func (s *State) Page(n models.NovelSummary) Page {
	d := Detail(n)
	crumbs := []Crumb{{Label: "Home", URL: "/"}, {Label: "Browse", URL: "/browse"}}
	if len(d.Genres) > 0 {
		crumbs = append(crumbs, Crumb{Label: d.Genres[0]})
	}
	crumbs = append(crumbs, Crumb{Label: d.Title})

	p := Page{
		Novel:         d,
		Status:        view.StatusBadge(d.Status),
		Rating:        strconv.FormatFloat(d.Rating, 'f', 1, 64),
		Views:         view.Number(d.Views),
		Likes:         view.Number(d.Likes),
		Bookmarks:     view.Number(d.Bookmarks),
		Words:         view.Compact(d.Words),
		Breadcrumb:    crumbs,
		Bookmarked:    s.Bookmarked,
		BookmarkLabel: "Bookmark",
		Following:     s.Following,
		FollowLabel:   "Follow",
		Chapters:      Listing(d.ID),
	}
	if d.Chapters > 0 {
		p.StartReadingURL = view.ChapterURL(d.ID, 1)
	}
	if s.Bookmarked {
		p.BookmarkLabel = "Bookmarked"
	}
	if s.Following {
		p.FollowLabel = "Following"
	}
	for _, r := range reviews.ForNovel(d.ID) {
		p.Reviews = append(p.Reviews, ReviewItem{Review: r, Stars: reviews.Stars(r.Rating)})
	}
	if p.Reviews == nil {
		p.Reviews = []ReviewItem{}
	}
	return p
}

func parseBool(s string, def bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}
