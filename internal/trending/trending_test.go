package trending

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"

	"novelverse/internal/catalog"
	"novelverse/pkg/models"
)

func TestEntriesByTimeframe(t *testing.T) {
	weekly := NewState(url.Values{}).Entries(catalog.Seed())
	if len(weekly) != 4 || weekly[0].ID != "1" || weekly[3].ID != "2" {
		t.Fatalf("weekly = %+v", weekly)
	}
	if _, ok := weekly[0].PeriodViews.(models.WeeklyViews); !ok {
		t.Fatalf("weekly entry carries %T", weekly[0].PeriodViews)
	}

	daily := NewState(url.Values{"timeframe": {"daily"}}).Entries(catalog.Seed())
	if len(daily) != 2 || daily[0].PeriodViews.Count() != 2100 || daily[0].PeriodViews.Timeframe() != models.TimeframeDaily {
		t.Fatalf("daily = %+v", daily)
	}

	if got := NewState(url.Values{"timeframe": {"yearly"}}).Entries(catalog.Seed()); len(got) != 0 {
		t.Fatalf("unknown timeframe = %+v", got)
	}
}

func TestCategoryFilter(t *testing.T) {
	st := NewState(url.Values{"category": {"scifi"}})
	if st.GenreFilter() != "Sci-Fi" {
		t.Fatalf("filter = %q", st.GenreFilter())
	}
	got := st.Entries(catalog.Seed())
	if len(got) != 1 || got[0].Title != "Digital Realms" {
		t.Fatalf("scifi = %+v", got)
	}
	if got := NewState(url.Values{"category": {"action"}}).Entries(catalog.Seed()); len(got) != 0 {
		t.Fatalf("action = %+v", got)
	}
}

func TestRankTone(t *testing.T) {
	for in, want := range map[string]string{"+2": "up", "-1": "down", "0": "steady", "": "steady"} {
		if got := RankTone(in); got != want {
			t.Fatalf("RankTone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEntryJSONUsesTimeframeKey(t *testing.T) {
	e := models.TrendingEntry{
		NovelSummary: models.NovelSummary{ID: "3", Title: "Dragon's Crown"},
		Rank:         1,
		RankChange:   "+2",
		PeriodViews:  models.MonthlyViews(65000),
	}
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["monthly_views"] != float64(65000) || m["title"] != "Dragon's Crown" {
		t.Fatalf("json = %s", b)
	}
	if _, ok := m["weekly_views"]; ok {
		t.Fatalf("unexpected weekly_views in %s", b)
	}
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(catalog.NewSeedStore()).RegisterRoutes(r.Group("/trending"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/trending?timeframe=monthly", nil))
	var p Page
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(p.Entries) != 2 || p.Entries[0].PeriodViews != "65,000" || p.Entries[1].Tone != "up" {
		t.Fatalf("page = %+v", p)
	}
}
