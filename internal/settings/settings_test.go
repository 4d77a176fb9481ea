package settings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"novelverse/internal/backend"
	"novelverse/internal/feed"
	"novelverse/pkg/models"
)

func TestDefaultsValidate(t *testing.T) {
	d := Defaults()
	for _, err := range []error{
		validateProfile(d.Profile),
		validateNotifications(d.Notifications),
		validateReading(d.Reading),
		validatePrivacy(d.Privacy),
	} {
		if err != nil {
			t.Fatalf("defaults invalid: %v", err)
		}
	}
	if d.Profile.Location != "San Francisco, CA" || d.Privacy.AllowMessages != "friends" || d.Reading.Theme != "auto" {
		t.Fatalf("defaults = %+v", d)
	}
}

func TestParseSection(t *testing.T) {
	if s, err := ParseSection(" Reading "); err != nil || s != SectionReading {
		t.Fatalf("ParseSection = %q, %v", s, err)
	}
	if _, err := ParseSection("billing"); !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("err = %v", err)
	}
}

func TestValidateReading(t *testing.T) {
	r := Defaults().Reading
	r.FontSize = 15
	var verr *ValidationError
	if err := validateReading(r); !errors.As(err, &verr) || verr.Field != "font_size" {
		t.Fatalf("err = %v", err)
	}
	r = Defaults().Reading
	r.LineHeight = 3
	if err := validateReading(r); !errors.As(err, &verr) || verr.Field != "line_height" {
		t.Fatalf("err = %v", err)
	}
}

type fakeAPI struct {
	backend.API
	saved   map[string]any
	deleted bool
}

func (f *fakeAPI) SaveSettings(_ context.Context, section string, v any) error {
	f.saved[section] = v
	return nil
}

func (f *fakeAPI) DeleteAccount(_ context.Context, _ string) error {
	f.deleted = true
	return nil
}

func newRouter(api backend.API) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(api).RegisterRoutes(r.Group("/settings"))
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSaveSection(t *testing.T) {
	api := &fakeAPI{saved: map[string]any{}}
	r := newRouter(api)

	w := do(r, http.MethodPut, "/settings/privacy", `{"profile_visibility":"private"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d body = %s", w.Code, w.Body.String())
	}
	p, ok := api.saved["privacy"].(*models.PrivacySettings)
	if !ok || p.ProfileVisibility != "private" || p.AllowMessages != "friends" {
		t.Fatalf("saved = %#v", api.saved["privacy"])
	}

	if w := do(r, http.MethodPut, "/settings/privacy", `{"allow_messages":"strangers"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("invalid code = %d", w.Code)
	}
	if w := do(r, http.MethodPut, "/settings/billing", `{}`); w.Code != http.StatusNotFound {
		t.Fatalf("unknown section code = %d", w.Code)
	}
}

func TestDeleteNeedsConfirm(t *testing.T) {
	api := &fakeAPI{saved: map[string]any{}}
	r := newRouter(api)

	w := do(r, http.MethodDelete, "/settings/account", `{}`)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "cannot be undone") {
		t.Fatalf("unconfirmed = %d %s", w.Code, w.Body.String())
	}
	if api.deleted {
		t.Fatal("deleted without confirmation")
	}
	if w := do(r, http.MethodDelete, "/settings/account", `{"confirm":true}`); w.Code != http.StatusOK || !api.deleted {
		t.Fatalf("confirmed = %d deleted=%v", w.Code, api.deleted)
	}
}

func TestExportWithStub(t *testing.T) {
	stub := backend.NewStub(feed.NewHub(5))
	r := newRouter(stub)

	if w := do(r, http.MethodPut, "/settings/notifications", `{"email_digest":"daily"}`); w.Code != http.StatusOK {
		t.Fatalf("save code = %d", w.Code)
	}
	w := do(r, http.MethodPost, "/settings/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("export code = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "user_id: user-123") || !strings.Contains(body, "emailDigest: daily") {
		t.Fatalf("export = %s", body)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "novelverse-export.yaml") {
		t.Fatalf("disposition = %q", w.Header().Get("Content-Disposition"))
	}
}
