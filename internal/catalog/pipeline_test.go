package catalog

import (
	"reflect"
	"strings"
	"testing"

	"novelverse/pkg/models"
)

func ids(novels []models.NovelSummary) []string {
	out := make([]string, 0, len(novels))
	for _, n := range novels {
		out = append(out, n.ID)
	}
	return out
}

func TestApplyPopularOrder(t *testing.T) {
	got := Apply(Seed(), Criteria{Genre: AllGenres, Sort: SortPopular})
	if want := []string{"3", "1", "2", "4"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("ids = %v, want %v", ids(got), want)
	}
	if got[0].Title != "Dragon's Crown" || got[3].Title != "Starlit Dreams" {
		t.Fatalf("titles = %q..%q", got[0].Title, got[3].Title)
	}
}

func TestApplyScenarios(t *testing.T) {
	cases := []struct {
		name string
		crit Criteria
		want []string
	}{
		{"query mystic", Criteria{Query: "mystic", Genre: AllGenres}, []string{"The Mystic Academy"}},
		{"query mixed case", Criteria{Query: "  MYSTIC "}, []string{"The Mystic Academy"}},
		{"genre romance", Criteria{Genre: "romance"}, []string{"Starlit Dreams"}},
		{"genre is exact", Criteria{Genre: "Fant"}, nil},
		{"no match", Criteria{Query: "zzzznotfound"}, nil},
		{"query and genre", Criteria{Query: "dragon", Genre: "Fantasy"}, []string{"Dragon's Crown"}},
		{"query on genre", Criteria{Query: "cyberpunk"}, []string{"Digital Realms"}},
		{"query on author", Criteria{Query: "nightshade"}, []string{"Starlit Dreams"}},
	}
	for _, tc := range cases {
		got := Apply(Seed(), tc.crit)
		var titles []string
		for _, n := range got {
			titles = append(titles, n.Title)
		}
		if !reflect.DeepEqual(titles, tc.want) {
			t.Fatalf("%s: titles = %v, want %v", tc.name, titles, tc.want)
		}
	}
}

func TestApplyQueryContainment(t *testing.T) {
	for _, q := range []string{"a", "the", "fantasy", "world", "x"} {
		for _, n := range Apply(Seed(), Criteria{Query: q}) {
			if !MatchesQuery(n, strings.ToLower(q)) {
				t.Fatalf("query %q returned non-matching %q", q, n.Title)
			}
		}
	}
}

func TestApplyGenreFilter(t *testing.T) {
	for _, g := range []string{"Fantasy", "sci-fi", "ADVENTURE", "Horror"} {
		for _, n := range Apply(Seed(), Criteria{Genre: g}) {
			found := false
			for _, ng := range n.Genres {
				if strings.EqualFold(ng, g) {
					found = true
				}
			}
			if !found {
				t.Fatalf("genre %q returned %q with genres %v", g, n.Title, n.Genres)
			}
		}
	}
}

func TestSortProperties(t *testing.T) {
	popular := Apply(Seed(), Criteria{Sort: SortPopular})
	for i := 1; i < len(popular); i++ {
		if popular[i-1].Views < popular[i].Views {
			t.Fatalf("popular not non-increasing at %d", i)
		}
	}

	rated := Apply(Seed(), Criteria{Sort: SortRating})
	if want := []string{"3", "1", "4", "2"}; !reflect.DeepEqual(ids(rated), want) {
		t.Fatalf("rating ids = %v, want %v", ids(rated), want)
	}

	alpha := Apply(Seed(), Criteria{Sort: SortAlphabetical})
	cmpTitle := TitleComparator()
	for i := 1; i < len(alpha); i++ {
		if cmpTitle(alpha[i-1].Title, alpha[i].Title) > 0 {
			t.Fatalf("alphabetical out of order: %q before %q", alpha[i-1].Title, alpha[i].Title)
		}
	}
	if want := []string{"Digital Realms", "Dragon's Crown", "Starlit Dreams", "The Mystic Academy"}; alpha[0].Title != want[0] || alpha[3].Title != want[3] {
		t.Fatalf("alphabetical = %v", ids(alpha))
	}
}

func TestSortUnknownAndRelativeDatesKeepOrder(t *testing.T) {
	want := []string{"1", "2", "3", "4"}
	if got := ids(Apply(Seed(), Criteria{Sort: "bogus"})); !reflect.DeepEqual(got, want) {
		t.Fatalf("unknown sort ids = %v, want %v", got, want)
	}
	if got := ids(Apply(Seed(), Criteria{Sort: SortRecent})); !reflect.DeepEqual(got, want) {
		t.Fatalf("recent over relative text ids = %v, want %v", got, want)
	}
}

func TestSortRecentWithRealDates(t *testing.T) {
	novels := []models.NovelSummary{
		{ID: "a", LastUpdated: "2024-01-15"},
		{ID: "b", LastUpdated: "January 20, 2024"},
		{ID: "c", LastUpdated: "2024-02-01T10:00:00Z"},
	}
	got := ids(Apply(novels, Criteria{Sort: SortRecent}))
	if want := []string{"c", "b", "a"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("recent ids = %v, want %v", got, want)
	}
}

func TestApplyStableOnTies(t *testing.T) {
	novels := []models.NovelSummary{
		{ID: "a", Views: 10}, {ID: "b", Views: 20}, {ID: "c", Views: 10}, {ID: "d", Views: 20},
	}
	got := ids(Apply(novels, Criteria{Sort: SortPopular}))
	if want := []string{"b", "d", "a", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
}

func TestApplyIdempotentAndPure(t *testing.T) {
	in := Seed()
	crit := Criteria{Query: "a", Genre: "fantasy", Sort: SortAlphabetical}
	once := Apply(in, crit)
	twice := Apply(once, crit)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("not idempotent: %v vs %v", ids(once), ids(twice))
	}
	if got := ids(in); !reflect.DeepEqual(got, []string{"1", "2", "3", "4"}) {
		t.Fatalf("input mutated: %v", got)
	}
}

func TestApplyEmptyInput(t *testing.T) {
	for _, crit := range []Criteria{{}, {Query: "x"}, {Genre: "Fantasy", Sort: SortRating}} {
		if got := Apply(nil, crit); len(got) != 0 {
			t.Fatalf("empty input gave %v", got)
		}
	}
}

func TestParseSortKey(t *testing.T) {
	if got := ParseSortKey("", SortPopular); got != SortPopular {
		t.Fatalf("default = %q", got)
	}
	if got := ParseSortKey(" Rating ", SortPopular); got != SortRating {
		t.Fatalf("parsed = %q", got)
	}
	if got := ParseSortKey("nope", SortPopular); got != "nope" {
		t.Fatalf("unknown = %q", got)
	}
}
