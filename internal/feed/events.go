package feed

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeNovelCreated   = "novel.created"
	TypeChapterCreated = "chapter.created"
	TypeReviewCreated  = "review.created"
	TypeSettingsSaved  = "settings.saved"
	TypeLibraryBatch   = "library.batch"
	TypeAccountCreated = "account.created"
)

// Event is one activity notification fanned out to feed subscribers.
type Event struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Message string    `json:"message"`
	NovelID string    `json:"novel_id,omitempty"`
	At      time.Time `json:"at"`
}

func NewEvent(typ, message, novelID string) Event {
	return Event{
		ID:      uuid.NewString(),
		Type:    typ,
		Message: message,
		NovelID: novelID,
		At:      time.Now().UTC(),
	}
}
