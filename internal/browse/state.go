package browse

import (
	"net/url"
	"strings"

	"novelverse/internal/catalog"
	"novelverse/internal/view"
	"novelverse/pkg/models"
)

var GenreOptions = []string{"All", "Fantasy", "Romance", "Sci-Fi", "Adventure", "Mystery", "Action", "Drama"}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var SortOptions = []Option{
	{Value: string(catalog.SortPopular), Label: "Most Popular"},
	{Value: string(catalog.SortRating), Label: "Highest Rated"},
	{Value: string(catalog.SortRecent), Label: "Recently Updated"},
	{Value: string(catalog.SortAlphabetical), Label: "A-Z"},
}

// State is the browse page controller. It lives for one page view.
type State struct {
	Search string
	Genre  string
	Sort   catalog.SortKey
	Mode   view.Mode
}

// NewState seeds the controller from the page URL.
func NewState(q url.Values) *State {
	genre := strings.TrimSpace(q.Get("genre"))
	if genre == "" {
		genre = catalog.AllGenres
	}
	return &State{
		Search: q.Get("search"),
		Genre:  genre,
		Sort:   catalog.ParseSortKey(q.Get("sort"), catalog.SortPopular),
		Mode:   view.ParseMode(q.Get("view")),
	}
}

func (s *State) ClearFilters() {
	s.Search = ""
	s.Genre = catalog.AllGenres
}

// SearchParams applies a submitted search to the URL query: a blank search
// removes the parameter.
func (s *State) SearchParams(q url.Values) url.Values {
	out := url.Values{}
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	if strings.TrimSpace(s.Search) == "" {
		out.Del("search")
	} else {
		out.Set("search", s.Search)
	}
	return out
}

func (s *State) Criteria() catalog.Criteria {
	return catalog.Criteria{Query: s.Search, Genre: s.Genre, Sort: s.Sort}
}

func (s *State) Results(novels []models.NovelSummary) []models.NovelSummary {
	return catalog.Apply(novels, s.Criteria())
}

type Page struct {
	Search          string      `json:"search"`
	Genre           string      `json:"genre"`
	Sort            string      `json:"sort"`
	View            view.Mode   `json:"view"`
	GenreOptions    []string    `json:"genre_options"`
	SortOptions     []Option    `json:"sort_options"`
	Total           int         `json:"total"`
	Items           []view.Card `json:"items"`
	Empty           bool        `json:"empty"`
	EmptyMessage    string      `json:"empty_message,omitempty"`
	ClearFiltersURL string      `json:"clear_filters_url"`
}

func (s *State) Page(novels []models.NovelSummary) Page {
	items := s.Results(novels)
	p := Page{
		Search:       s.Search,
		Genre:        s.Genre,
		Sort:         string(s.Sort),
		View:         s.Mode,
		GenreOptions: GenreOptions,
		SortOptions:  SortOptions,
		Total:        len(items),
		Items:        view.Cards(items),
		Empty:        len(items) == 0,
	}
	if p.Empty {
		p.EmptyMessage = "No novels found. Try adjusting your search or filters."
	}

	cleared := *s
	cleared.ClearFilters()
	q := url.Values{}
	q.Set("sort", string(cleared.Sort))
	q.Set("view", string(cleared.Mode))
	p.ClearFiltersURL = "/browse?" + q.Encode()
	return p
}
