package library

import (
	"novelverse/pkg/models"
)

type shelfItem struct {
	novelID        string
	currentChapter int
	readProgress   int
	lastRead       string
	addedDate      string
	completedDate  string
	bookmarked     *bool
}

func boolPtr(b bool) *bool { return &b }

// shelves is the reader's saved position per novel, reading first, then
// completed, then bookmarked-but-unstarted.
var shelves = []shelfItem{
	{novelID: "1", currentChapter: 38, readProgress: 84, lastRead: "2 hours ago", addedDate: "2 weeks ago"},
	{novelID: "2", currentChapter: 23, readProgress: 60, lastRead: "1 day ago", addedDate: "1 month ago", bookmarked: boolPtr(false)},
	{novelID: "3", currentChapter: 62, readProgress: 100, lastRead: "3 days ago", addedDate: "2 months ago", completedDate: "3 days ago"},
	{novelID: "4", currentChapter: 0, readProgress: 0, lastRead: "Never", addedDate: "1 week ago", bookmarked: boolPtr(true)},
}

// Entries joins the shelves with the catalog. Shelf rows whose novel is not
// in the catalog are skipped.
func Entries(catalog []models.NovelSummary) []models.LibraryEntry {
	byID := make(map[string]models.NovelSummary, len(catalog))
	for _, n := range catalog {
		byID[n.ID] = n
	}
	out := make([]models.LibraryEntry, 0, len(shelves))
	for _, s := range shelves {
		n, ok := byID[s.novelID]
		if !ok {
			continue
		}
		if s.bookmarked != nil {
			n.IsBookmarked = *s.bookmarked
		}
		out = append(out, models.LibraryEntry{
			NovelSummary:   n,
			CurrentChapter: s.currentChapter,
			ReadProgress:   s.readProgress,
			LastRead:       s.lastRead,
			AddedDate:      s.addedDate,
			CompletedDate:  s.completedDate,
		})
	}
	return out
}
