package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"novelverse/internal/backend"
	"novelverse/internal/catalog"
	"novelverse/pkg/models"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		d    models.ReviewDraft
		want error
	}{
		{"ok", models.ReviewDraft{NovelID: "1", Rating: 5, Content: "loved it"}, nil},
		{"zero rating", models.ReviewDraft{NovelID: "1", Rating: 0, Content: "x"}, ErrInvalidRating},
		{"six stars", models.ReviewDraft{NovelID: "1", Rating: 6, Content: "x"}, ErrInvalidRating},
		{"blank content", models.ReviewDraft{NovelID: "1", Rating: 3, Content: "   "}, ErrEmptyContent},
		{"no novel", models.ReviewDraft{Rating: 3, Content: "x"}, ErrNovelRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := tc.d
			if err := Validate(&d); !errors.Is(err, tc.want) {
				t.Fatalf("Validate = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestForNovelCopies(t *testing.T) {
	a := ForNovel("1")
	if len(a) != 3 || a[2].Author != "MagicFan" || a[2].Likes != 31 {
		t.Fatalf("reviews = %+v", a)
	}
	a[0].Author = "changed"
	if ForNovel("1")[0].Author != "BookLover123" {
		t.Fatal("ForNovel shares its backing array")
	}
	if len(ForNovel("2")) != 0 {
		t.Fatal("novel 2 should have no reviews")
	}
}

func TestStars(t *testing.T) {
	if got := Stars(4); got != "★★★★☆" {
		t.Fatalf("Stars(4) = %q", got)
	}
	if got := Stars(9); got != "★★★★★" {
		t.Fatalf("Stars(9) = %q", got)
	}
}

type fakeAPI struct {
	backend.API
	got *models.ReviewDraft
}

func (f *fakeAPI) SubmitReview(_ context.Context, d models.ReviewDraft) (string, error) {
	f.got = &d
	return "rev-1", nil
}

func newRouter(api backend.API) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(catalog.NewSeedStore(), api).RegisterRoutes(r.Group("/novel"))
	return r
}

func TestHandlerList(t *testing.T) {
	r := newRouter(&fakeAPI{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/novel/1/reviews?limit=2", nil))
	var resp struct {
		Total int             `json:"total"`
		Items []models.Review `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 3 || len(resp.Items) != 2 {
		t.Fatalf("resp = %+v", resp)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/novel/99/reviews", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown novel code = %d", w.Code)
	}
}

func TestHandlerCreate(t *testing.T) {
	api := &fakeAPI{}
	r := newRouter(api)

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/novel/1/reviews", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	if w := post(`{"rating":7,"content":"too many stars"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("bad rating code = %d", w.Code)
	}
	if api.got != nil {
		t.Fatal("invalid draft reached the backend")
	}

	w := post(`{"author":"Reader","rating":4,"content":" Solid pacing. "}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("code = %d body = %s", w.Code, w.Body.String())
	}
	if api.got == nil || api.got.NovelID != "1" || api.got.Content != "Solid pacing." {
		t.Fatalf("backend got %+v", api.got)
	}
}
