package novel

import (
	"fmt"
	"strings"

	"novelverse/pkg/models"
)

type extra struct {
	fullDescription string
	genres          []string
	likes           int
	bookmarks       int
	chapters        int
	words           int
	publishDate     string
	language        string
	contentRating   string
	tags            []string
	authorBio       string
}

var extras = map[string]extra{
	"1": {
		fullDescription: strings.Join([]string{
			"Aria Blackthorne never expected her life to change when strange incidents started happening around her. Books would flip their own pages, candles would light themselves, and sometimes, just sometimes, she could swear she heard whispers in languages she didn't understand.",
			"Everything changed the day Professor Evelyn Morningstar arrived at her doorstep with an invitation to the Mystic Academy, a hidden institution where young mages learn to harness their magical abilities. For Aria, it seemed like a dream come true, a chance to finally understand the strange occurrences that had plagued her throughout her childhood.",
			"But the Academy holds darker secrets than Aria could have imagined. Ancient rivalries between magical houses, forbidden spells hidden in restricted libraries, and a growing shadow that threatens to consume everything she holds dear. As Aria delves deeper into her studies, she discovers that her powers are tied to an ancient prophecy, one that could either save the magical world or destroy it entirely.",
			"With the help of her new friends (Marcus, a talented but troubled fire mage; Luna, whose mastery of illusion magic is matched only by her sharp wit; and Kai, a mysterious student with connections to the Academy's founding families) Aria must navigate not only her studies but also the dangerous political intrigue that surrounds her.",
			"As dark forces gather and long-buried secrets surface, Aria realizes that her enrollment at the Mystic Academy was no coincidence. She is the key to an ancient power that has been sleeping for centuries, and there are those who would do anything to claim that power for themselves.",
		}, "\n\n"),
		genres:        []string{"Fantasy", "Magic", "Academy", "Coming of Age", "Adventure"},
		likes:         8900,
		bookmarks:     12400,
		chapters:      45,
		words:         287000,
		publishDate:   "January 15, 2024",
		language:      "English",
		contentRating: "Teen",
		tags:          []string{"Strong Female Lead", "Magic System", "School Life", "Friendship", "Mystery", "Prophecy"},
		authorBio:     "Elena Starweaver is a bestselling fantasy author known for her immersive magical worlds and compelling characters. She has been writing for over a decade and has published numerous acclaimed works.",
	},
}

// Detail expands a summary into the detail record. Novels without extra
// detail reuse the summary's description and genres.
func Detail(n models.NovelSummary) models.NovelDetail {
	d := models.NovelDetail{
		NovelSummary:    n,
		FullDescription: n.Description,
		Language:        "English",
		Tags:            []string{},
	}
	x, ok := extras[n.ID]
	if !ok {
		return d
	}
	d.FullDescription = x.fullDescription
	d.Genres = append([]string(nil), x.genres...)
	d.Likes = x.likes
	d.Chapters = x.chapters
	d.Bookmarks = x.bookmarks
	d.Words = x.words
	d.PublishDate = x.publishDate
	d.Language = x.language
	d.ContentRating = x.contentRating
	d.Tags = append([]string(nil), x.tags...)
	d.AuthorBio = x.authorBio
	return d
}

var listings = map[string][]models.ChapterListing{
	"1": {
		{Number: 1, Title: "The Invitation", PublishDate: "Jan 15, 2024", IsRead: true},
		{Number: 2, Title: "Welcome to Mystic Academy", PublishDate: "Jan 17, 2024", IsRead: true},
		{Number: 3, Title: "First Lessons", PublishDate: "Jan 20, 2024", IsRead: true},
		{Number: 4, Title: "The Library's Secret", PublishDate: "Jan 22, 2024"},
		{Number: 5, Title: "House Rivalries", PublishDate: "Jan 25, 2024"},
		{Number: 6, Title: "Forbidden Magic", PublishDate: "Jan 27, 2024"},
	},
}

// Listing returns the published chapter list shown on the details page.
func Listing(novelID string) []models.ChapterListing {
	return append([]models.ChapterListing{}, listings[novelID]...)
}

// ListedTitle is the published title of chapter n, if the chapter is listed.
func ListedTitle(novelID string, n int) (string, bool) {
	for _, l := range listings[novelID] {
		if l.Number == n {
			return l.Title, true
		}
	}
	return "", false
}

// ChapterTitle names chapter n, falling back to "Chapter n".
func ChapterTitle(novelID string, n int) string {
	if t, ok := ListedTitle(novelID, n); ok {
		return t
	}
	return fmt.Sprintf("Chapter %d", n)
}
