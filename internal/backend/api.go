// Package backend is the boundary to the platform's HTTP API. Pages hand
// submissions to an API and never persist anything themselves.
package backend

import (
	"context"

	"novelverse/internal/feed"
	"novelverse/pkg/models"
)

type API interface {
	CreateNovel(ctx context.Context, d models.NovelDraft) (string, error)
	CreateChapter(ctx context.Context, d models.ChapterDraft) (string, error)
	SubmitReview(ctx context.Context, d models.ReviewDraft) (string, error)
	Register(ctx context.Context, a models.Account) (string, error)
	Login(ctx context.Context, r models.LoginRequest) error
	ResetPassword(ctx context.Context, email string) error
	SaveSettings(ctx context.Context, section string, v any) error
	ExportData(ctx context.Context, userID string) ([]byte, error)
	DeleteAccount(ctx context.Context, userID string) error
	LibraryBatch(ctx context.Context, action string, novelIDs []string) error
}

// Publisher receives the activity a submission produces.
type Publisher interface {
	Publish(ev feed.Event)
}
