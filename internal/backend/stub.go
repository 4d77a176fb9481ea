package backend

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"novelverse/internal/feed"
	"novelverse/pkg/models"
)

// Stub logs every submission and publishes an activity event. Nothing is
// stored except the last saved settings, which ExportData echoes back.
type Stub struct {
	Pub Publisher

	mu       sync.Mutex
	settings map[string]any
}

func NewStub(pub Publisher) *Stub {
	return &Stub{Pub: pub, settings: make(map[string]any)}
}

func (s *Stub) publish(typ, msg, novelID string) {
	if s.Pub == nil {
		return
	}
	s.Pub.Publish(feed.NewEvent(typ, msg, novelID))
}

func (s *Stub) CreateNovel(ctx context.Context, d models.NovelDraft) (string, error) {
	id := uuid.NewString()
	slog.InfoContext(ctx, "create novel", "id", id, "title", d.Title, "genres", d.Genres, "tags", d.Tags, "status", d.Status)
	s.publish(feed.TypeNovelCreated, fmt.Sprintf("New novel %q created", d.Title), id)
	return id, nil
}

func (s *Stub) CreateChapter(ctx context.Context, d models.ChapterDraft) (string, error) {
	id := uuid.NewString()
	slog.InfoContext(ctx, "create chapter", "id", id, "novel_id", d.NovelID, "title", d.Title, "published", d.IsPublished, "chars", len(d.Content))
	verb := "drafted"
	if d.IsPublished {
		verb = "published"
	}
	s.publish(feed.TypeChapterCreated, fmt.Sprintf("Chapter %q %s", d.Title, verb), d.NovelID)
	return id, nil
}

func (s *Stub) SubmitReview(ctx context.Context, d models.ReviewDraft) (string, error) {
	id := uuid.NewString()
	slog.InfoContext(ctx, "submit review", "id", id, "novel_id", d.NovelID, "rating", d.Rating)
	s.publish(feed.TypeReviewCreated, fmt.Sprintf("New %d-star review", d.Rating), d.NovelID)
	return id, nil
}

func (s *Stub) Register(ctx context.Context, a models.Account) (string, error) {
	id := uuid.NewString()
	slog.InfoContext(ctx, "register account", "id", id, "username", a.Username, "email", a.Email, "newsletter", a.Newsletter)
	s.publish(feed.TypeAccountCreated, fmt.Sprintf("%s joined", a.Username), "")
	return id, nil
}

func (s *Stub) Login(ctx context.Context, r models.LoginRequest) error {
	slog.InfoContext(ctx, "login", "email", r.Email, "remember_me", r.RememberMe)
	return nil
}

func (s *Stub) ResetPassword(ctx context.Context, email string) error {
	slog.InfoContext(ctx, "password reset requested", "email", email)
	return nil
}

func (s *Stub) SaveSettings(ctx context.Context, section string, v any) error {
	s.mu.Lock()
	s.settings[section] = v
	s.mu.Unlock()
	slog.InfoContext(ctx, "save settings", "section", section)
	s.publish(feed.TypeSettingsSaved, fmt.Sprintf("%s settings saved", section), "")
	return nil
}

// ExportData renders the saved settings as a YAML document.
func (s *Stub) ExportData(ctx context.Context, userID string) ([]byte, error) {
	s.mu.Lock()
	sections := make(map[string]any, len(s.settings))
	for k, v := range s.settings {
		sections[k] = v
	}
	s.mu.Unlock()

	doc := map[string]any{
		"user_id":     userID,
		"exported_at": time.Now().UTC().Format(time.RFC3339),
		"settings":    sections,
	}
	b, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	slog.InfoContext(ctx, "export data", "user_id", userID, "bytes", len(b))
	return b, nil
}

func (s *Stub) DeleteAccount(ctx context.Context, userID string) error {
	slog.WarnContext(ctx, "delete account", "user_id", userID)
	return nil
}

func (s *Stub) LibraryBatch(ctx context.Context, action string, novelIDs []string) error {
	slog.InfoContext(ctx, "library batch", "action", action, "novel_ids", novelIDs)
	s.publish(feed.TypeLibraryBatch, fmt.Sprintf("%s %d novels", action, len(novelIDs)), "")
	return nil
}
