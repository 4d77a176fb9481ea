package reader

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"novelverse/internal/catalog"
	"novelverse/pkg/models"
)

func mystic() models.NovelSummary {
	return catalog.Seed()[0]
}

func TestNormalizeClamps(t *testing.T) {
	cases := []struct {
		in   Typography
		want Typography
	}{
		{Typography{FontSize: 40, FontFamily: "MONO", LineHeight: 9, MaxWidth: 5000},
			Typography{FontSize: 24, FontFamily: "mono", LineHeight: 2.4, MaxWidth: 1200}},
		{Typography{FontSize: 1, FontFamily: "comic", LineHeight: 0.5, MaxWidth: 10},
			Typography{FontSize: 12, FontFamily: "serif", LineHeight: 1.2, MaxWidth: 600}},
		{Typography{FontSize: 17, FontFamily: "sans", LineHeight: 1.84, MaxWidth: 830},
			Typography{FontSize: 18, FontFamily: "sans", LineHeight: 1.8, MaxWidth: 850}},
	}
	for _, tc := range cases {
		if got := tc.in.Normalize(); got != tc.want {
			t.Fatalf("Normalize(%+v) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseTypographyDefaults(t *testing.T) {
	got := ParseTypography(url.Values{"font_size": {"abc"}})
	if got != DefaultTypography() {
		t.Fatalf("got %+v, want defaults", got)
	}
	got = ParseTypography(url.Values{"font_size": {"22"}, "dark": {"true"}})
	if got.FontSize != 22 || !got.DarkMode {
		t.Fatalf("got %+v", got)
	}
}

func TestAdjustStaysInRange(t *testing.T) {
	ty := DefaultTypography()
	for i := 0; i < 10; i++ {
		ty = ty.Adjust("font_larger").Adjust("wider").Adjust("line_taller")
	}
	if ty.FontSize != MaxFontSize || ty.MaxWidth != MaxMaxWidth || ty.LineHeight != MaxLineHeight {
		t.Fatalf("after growing = %+v", ty)
	}
	ty = ty.Adjust("toggle_dark")
	if !ty.DarkMode {
		t.Fatal("dark mode not toggled")
	}
}

func TestScrollProgress(t *testing.T) {
	cases := []struct {
		top, height, client, want float64
	}{
		{0, 1000, 500, 0},
		{250, 1000, 500, 50},
		{900, 1000, 500, 100},
		{100, 500, 500, 0},
		{-50, 1000, 500, 0},
	}
	for _, tc := range cases {
		if got := ScrollProgress(tc.top, tc.height, tc.client); got != tc.want {
			t.Fatalf("ScrollProgress(%v,%v,%v) = %v, want %v", tc.top, tc.height, tc.client, got, tc.want)
		}
	}
}

func TestLoadAndNavigation(t *testing.T) {
	ch, err := Load(mystic(), 1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ch.Title != "Chapter 1: The Invitation" || ch.WordCount != 1247 || ch.TotalChapters != 45 {
		t.Fatalf("chapter = %+v", ch)
	}
	if !strings.HasPrefix(ch.Content, "The letter arrived") {
		t.Fatalf("content starts %q", ch.Content[:40])
	}
	prev, next := Navigation(ch)
	if !prev.Disabled || next.Disabled || next.URL != "/read/1/chapter/2" {
		t.Fatalf("nav = %+v %+v", prev, next)
	}

	last, _ := Load(mystic(), 45)
	prev, next = Navigation(last)
	if prev.Disabled || !next.Disabled {
		t.Fatalf("last nav = %+v %+v", prev, next)
	}
	if last.Title != "Chapter 45" {
		t.Fatalf("last title = %q", last.Title)
	}

	if _, err := Load(mystic(), 46); !errors.Is(err, ErrChapterOutOfRange) {
		t.Fatalf("Load(46) err = %v", err)
	}
}

func TestIndex(t *testing.T) {
	ch, _ := Load(mystic(), 3)
	idx := Index(ch)
	if len(idx) != 45 || !idx[2].Current || idx[1].Title != "Welcome to Mystic Academy" {
		t.Fatalf("index head = %+v", idx[:3])
	}
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(catalog.NewSeedStore()).RegisterRoutes(r.Group("/read"))

	cases := []struct {
		path string
		code int
		num  int
	}{
		{"/read/1/chapter/2", http.StatusOK, 2},
		{"/read/1/chapter/abc", http.StatusOK, 1},
		{"/read/1/chapter/0", http.StatusOK, 1},
		{"/read/1/chapter/99", http.StatusNotFound, 0},
		{"/read/nope/chapter/1", http.StatusNotFound, 0},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if w.Code != tc.code {
			t.Fatalf("%s code = %d, want %d", tc.path, w.Code, tc.code)
		}
		if tc.code != http.StatusOK {
			continue
		}
		var p Page
		if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if p.Chapter.Number != tc.num || p.Words != "1,247 words" {
			t.Fatalf("%s page = %+v", tc.path, p.Chapter)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/read/1/chapter/1", strings.NewReader(`{"font_size":24,"adjust":"font_larger"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	var ty Typography
	if err := json.Unmarshal(w.Body.Bytes(), &ty); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ty.FontSize != 24 || ty.LineHeight != DefaultLineHeight {
		t.Fatalf("typography = %+v", ty)
	}
}
