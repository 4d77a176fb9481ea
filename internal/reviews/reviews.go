package reviews

import (
	"errors"
	"strings"

	"novelverse/pkg/models"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrEmptyContent  = errors.New("review content required")
	ErrNovelRequired = errors.New("novel id required")
)

var seeded = map[string][]models.Review{
	"1": {
		{ID: "1", NovelID: "1", Author: "BookLover123", Rating: 5, Date: "2 days ago", Likes: 24,
			Content: "Absolutely incredible! The world-building is phenomenal and Aria is such a relatable protagonist. Can't wait for the next chapter!"},
		{ID: "2", NovelID: "1", Author: "FantasyReader", Rating: 4, Date: "1 week ago", Likes: 18,
			Content: "Great story with excellent character development. The magic system is well thought out and the academy setting feels authentic."},
		{ID: "3", NovelID: "1", Author: "MagicFan", Rating: 5, Date: "2 weeks ago", Likes: 31,
			Content: "This is quickly becoming one of my favorite novels! Elena Starweaver has created something truly special here."},
	},
}

// ForNovel returns a copy of the reviews shown on a novel's page.
func ForNovel(novelID string) []models.Review {
	return append([]models.Review{}, seeded[novelID]...)
}

// Validate trims the draft in place and checks it can be submitted.
func Validate(d *models.ReviewDraft) error {
	d.NovelID = strings.TrimSpace(d.NovelID)
	d.Author = strings.TrimSpace(d.Author)
	d.Content = strings.TrimSpace(d.Content)
	if d.NovelID == "" {
		return ErrNovelRequired
	}
	if d.Rating < 1 || d.Rating > 5 {
		return ErrInvalidRating
	}
	if d.Content == "" {
		return ErrEmptyContent
	}
	return nil
}

// Stars renders a 1-5 rating as filled and empty stars.
func Stars(rating int) string {
	n := max(0, min(5, rating))
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
