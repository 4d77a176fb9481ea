package home

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"novelverse/internal/catalog"
)

func TestSearchTarget(t *testing.T) {
	if _, ok := SearchTarget("   "); ok {
		t.Fatalf("blank query should not navigate")
	}
	got, ok := SearchTarget("  dragon crown ")
	if !ok || got != "/browse?search=dragon+crown" {
		t.Fatalf("target = %q, %v", got, ok)
	}
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(catalog.NewSeedStore()).RegisterRoutes(&r.RouterGroup)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var page Page
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page.Featured) != 4 || len(page.Stats) != 4 {
		t.Fatalf("featured = %d stats = %d", len(page.Featured), len(page.Stats))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search?q=mystic", nil))
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/browse?search=mystic" {
		t.Fatalf("redirect = %d %q", w.Code, w.Header().Get("Location"))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search?q=+", nil))
	if w.Header().Get("Location") != "/" {
		t.Fatalf("blank search location = %q, want /", w.Header().Get("Location"))
	}
}
