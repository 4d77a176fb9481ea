package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"novelverse/internal/backend"
	"novelverse/internal/feed"
	"novelverse/pkg/models"
)

type fakeFeed []feed.Event

func (f fakeFeed) Recent(n int) []feed.Event {
	if n > 0 && n < len(f) {
		return f[:n]
	}
	return f
}

func TestTiles(t *testing.T) {
	tiles := Tiles(Author())
	if len(tiles) != 6 {
		t.Fatalf("tiles = %d", len(tiles))
	}
	want := []string{"223,000", "16,100", "22,200", "1,245", "4.7", "2"}
	for i, w := range want {
		if tiles[i].Value != w {
			t.Fatalf("tile %s = %q, want %q", tiles[i].Label, tiles[i].Value, w)
		}
	}
	if tiles[0].Change != "+15%" {
		t.Fatalf("views change = %q", tiles[0].Change)
	}
}

func TestActivitiesMergeLiveFirst(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	events := fakeFeed{
		{Type: feed.TypeChapterCreated, Message: `Chapter "Homecoming" published`, At: now.Add(-5 * time.Minute)},
		{Type: feed.TypeSettingsSaved, Message: "Settings saved", At: now.Add(-2 * time.Hour)},
	}
	got := Activities(Author().RecentActivity, events, now)
	if len(got) != 6 {
		t.Fatalf("activities = %d", len(got))
	}
	if got[0].Type != "chapter" || got[0].Time != "5 minutes ago" {
		t.Fatalf("first = %+v", got[0])
	}
	if got[1].Type != "update" || got[1].Time != "2 hours ago" {
		t.Fatalf("second = %+v", got[1])
	}
	if got[2].Message != "Chapter 45: The Final Trial" {
		t.Fatalf("seed not after live: %+v", got[2])
	}
}

func TestSubmitResetsAndHides(t *testing.T) {
	st := NewState(false)
	st.OpenForm()
	st.Form.Title = "  Ember Road "
	st.Form.Genres = []string{"Fantasy"}
	d := st.Submit()
	if d.Title != "Ember Road" || len(d.Genres) != 1 {
		t.Fatalf("draft = %+v", d)
	}
	if st.ShowForm || st.Form.Title != "" || st.Form.Language != "English" || len(st.Form.Genres) != 0 {
		t.Fatalf("state after submit = %+v", st)
	}
}

func TestAuthorIsCopy(t *testing.T) {
	a := Author()
	a.Novels[0].Title = "changed"
	if Author().Novels[0].Title != "The Mystic Academy" {
		t.Fatal("Author shares novel slice")
	}
}

type fakeAPI struct {
	backend.API
	got *models.NovelDraft
}

func (f *fakeAPI) CreateNovel(_ context.Context, d models.NovelDraft) (string, error) {
	f.got = &d
	return "n-9", nil
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	api := &fakeAPI{}
	h := NewHandler(api, fakeFeed{{Type: feed.TypeReviewCreated, Message: "New 4-star review", At: time.Now()}})
	r := gin.New()
	h.RegisterRoutes(r.Group("/dashboard"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard?new=1", nil))
	var p Page
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !p.ShowForm || len(p.Novels) != 2 || p.Activities[0].Type != "review" {
		t.Fatalf("page = %+v", p)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/dashboard/novels", strings.NewReader(`{"title":"Ember Road","genres":["Fantasy"]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("code = %d body = %s", w.Code, w.Body.String())
	}
	if api.got == nil || api.got.Title != "Ember Road" {
		t.Fatalf("api got %+v", api.got)
	}
	if !strings.Contains(w.Body.String(), `"show_form":false`) {
		t.Fatalf("form not hidden: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/dashboard/novels", strings.NewReader(`{"title":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("blank title code = %d", w.Code)
	}
}
