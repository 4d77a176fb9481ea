package genres

import (
	"net/url"
	"strings"

	"novelverse/internal/catalog"
	"novelverse/internal/view"
	"novelverse/pkg/models"
)

const maxCardTags = 3

type Tile struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Icon       string   `json:"icon"`
	Desc       string   `json:"description"`
	NovelCount string   `json:"novel_count"`
	Tags       []string `json:"tags"`
	MoreTags   string   `json:"more_tags,omitempty"`
	URL        string   `json:"url"`
}

func NewTile(g models.Genre) Tile {
	tags, more := view.TruncateGenres(g.PopularTags, maxCardTags)
	return Tile{
		ID:         g.ID,
		Name:       g.Name,
		Icon:       g.Icon,
		Desc:       g.Description,
		NovelCount: view.Number(g.NovelCount),
		Tags:       tags,
		MoreTags:   more,
		URL:        "/genres/" + g.ID,
	}
}

type DirectoryPage struct {
	Genres []Tile `json:"genres"`
}

func BuildDirectory() DirectoryPage {
	dir := Directory()
	tiles := make([]Tile, 0, len(dir))
	for _, g := range dir {
		tiles = append(tiles, NewTile(g))
	}
	return DirectoryPage{Genres: tiles}
}

// State is the controller of one selected genre.
type State struct {
	Genre  models.Genre
	Search string
	Sort   catalog.SortKey
	Mode   view.Mode
}

func NewState(g models.Genre, q url.Values) *State {
	return &State{
		Genre:  g,
		Search: q.Get("search"),
		Sort:   catalog.ParseSortKey(q.Get("sort"), ""),
		Mode:   view.ParseMode(q.Get("view")),
	}
}

// Novels lists the genre's top novels in their curated order, narrowed by a
// title or author search. An empty sort key keeps the curated order.
func (s *State) Novels(all []models.NovelSummary) []models.NovelSummary {
	byID := make(map[string]models.NovelSummary, len(all))
	for _, n := range all {
		byID[n.ID] = n
	}
	q := strings.ToLower(strings.TrimSpace(s.Search))
	top := make([]models.NovelSummary, 0, len(s.Genre.TopNovels))
	for _, id := range s.Genre.TopNovels {
		n, ok := byID[id]
		if !ok {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(n.Title), q) &&
			!strings.Contains(strings.ToLower(n.Author), q) {
			continue
		}
		top = append(top, n)
	}
	catalog.Sort(top, s.Sort)
	return top
}

type GenrePage struct {
	Genre        models.Genre `json:"genre"`
	NovelCount   string       `json:"novel_count"`
	Search       string       `json:"search"`
	Sort         string       `json:"sort,omitempty"`
	View         view.Mode    `json:"view"`
	Items        []view.Card  `json:"items"`
	Empty        bool         `json:"empty"`
	EmptyMessage string       `json:"empty_message,omitempty"`
}

func (s *State) Page(all []models.NovelSummary) GenrePage {
	items := s.Novels(all)
	p := GenrePage{
		Genre:      s.Genre,
		NovelCount: view.Number(s.Genre.NovelCount),
		Search:     s.Search,
		Sort:       string(s.Sort),
		View:       s.Mode,
		Items:      view.Cards(items),
		Empty:      len(items) == 0,
	}
	if p.Empty {
		p.EmptyMessage = "No novels found in this genre."
	}
	return p
}
