package write

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"novelverse/pkg/models"
)

const (
	MaxGenres      = 5
	MaxTags        = 10
	MaxDescription = 200
	MaxSynopsis    = 2000
)

var AvailableGenres = []string{
	"Fantasy", "Romance", "Sci-Fi", "Adventure", "Mystery", "Action",
	"Drama", "Horror", "Comedy", "Slice of Life", "Supernatural", "Historical",
}

var AvailableTags = []string{
	"Strong Female Lead", "Magic System", "School Life", "Friendship",
	"Adventure", "Coming of Age", "Time Travel", "Dragons", "Academy",
	"Virtual Reality", "AI", "Cyberpunk", "Space Opera", "Martial Arts",
}

var ContentRatings = []string{"general", "teen", "mature", "explicit"}

var Languages = []string{"English", "Spanish", "French", "German", "Japanese", "Korean", "Chinese"}

var Statuses = []models.Status{models.StatusOngoing, models.StatusCompleted, models.StatusHiatus}

var (
	ErrTitleRequired      = errors.New("title required")
	ErrDescriptionTooLong = fmt.Errorf("description must be at most %d characters", MaxDescription)
	ErrSynopsisTooLong    = fmt.Errorf("synopsis must be at most %d characters", MaxSynopsis)
	ErrContentRating      = errors.New("unknown content rating")
	ErrLanguage           = errors.New("unknown language")
	ErrStatus             = errors.New("unknown status")
	ErrNovelRequired      = errors.New("novel id required")
	ErrContentRequired    = errors.New("chapter content required")
)

// NovelForm is the create-novel tab.
type NovelForm struct {
	Title         string
	Description   string
	Synopsis      string
	ContentRating string
	Language      string
	Status        models.Status
	CoverImage    string
	Genres        []string
	Tags          []string
}

func NewNovelForm() *NovelForm {
	return &NovelForm{Language: "English", Status: models.StatusOngoing}
}

// ToggleGenre selects or deselects a genre. Selecting past MaxGenres or an
// unlisted genre does nothing.
func (f *NovelForm) ToggleGenre(g string) {
	f.Genres = toggle(f.Genres, g, AvailableGenres, MaxGenres)
}

// ToggleTag works like ToggleGenre with the tag list and MaxTags.
func (f *NovelForm) ToggleTag(t string) {
	f.Tags = toggle(f.Tags, t, AvailableTags, MaxTags)
}

func toggle(selected []string, v string, allowed []string, limit int) []string {
	if i := slices.Index(selected, v); i >= 0 {
		return slices.Delete(selected, i, i+1)
	}
	if !slices.Contains(allowed, v) || len(selected) >= limit {
		return selected
	}
	return append(selected, v)
}

// CanSelectGenre reports whether the genre checkbox is enabled.
func (f *NovelForm) CanSelectGenre(g string) bool {
	return slices.Contains(f.Genres, g) || len(f.Genres) < MaxGenres
}

func (f *NovelForm) CanSelectTag(t string) bool {
	return slices.Contains(f.Tags, t) || len(f.Tags) < MaxTags
}

func (f *NovelForm) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(f.Description) > MaxDescription {
		return ErrDescriptionTooLong
	}
	if utf8.RuneCountInString(f.Synopsis) > MaxSynopsis {
		return ErrSynopsisTooLong
	}
	if f.ContentRating != "" && !slices.Contains(ContentRatings, f.ContentRating) {
		return ErrContentRating
	}
	if !slices.Contains(Languages, f.Language) {
		return ErrLanguage
	}
	if !slices.Contains(Statuses, f.Status) {
		return ErrStatus
	}
	return nil
}

func (f *NovelForm) Draft() models.NovelDraft {
	return models.NovelDraft{
		Title:         strings.TrimSpace(f.Title),
		Description:   f.Description,
		Synopsis:      f.Synopsis,
		Genres:        slices.Clone(f.Genres),
		Tags:          slices.Clone(f.Tags),
		ContentRating: f.ContentRating,
		Language:      f.Language,
		Status:        f.Status,
		CoverImage:    f.CoverImage,
	}
}

// ChapterForm is the add-chapter tab.
type ChapterForm struct {
	NovelID     string
	Title       string
	Content     string
	AuthorNote  string
	IsPublished bool
}

func (f *ChapterForm) Validate() error {
	if strings.TrimSpace(f.NovelID) == "" {
		return ErrNovelRequired
	}
	if strings.TrimSpace(f.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(f.Content) == "" {
		return ErrContentRequired
	}
	return nil
}

func (f *ChapterForm) Draft() models.ChapterDraft {
	return models.ChapterDraft{
		NovelID:     strings.TrimSpace(f.NovelID),
		Title:       strings.TrimSpace(f.Title),
		Content:     f.Content,
		AuthorNote:  f.AuthorNote,
		IsPublished: f.IsPublished,
	}
}

// WordCount counts whitespace separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}
