package models

// Status is the publication state of a novel.
type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusHiatus    Status = "hiatus"
)

// NovelSummary is the flat record rendered by catalog cards.
type NovelSummary struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	Description  string   `json:"description"`
	CoverImage   string   `json:"cover_image,omitempty"`
	Genres       []string `json:"genres"`
	Rating       float64  `json:"rating"`
	Views        int      `json:"views"`
	Likes        int      `json:"likes"`
	Chapters     int      `json:"chapters"`
	Status       Status   `json:"status"`
	LastUpdated  string   `json:"last_updated"`
	IsBookmarked bool     `json:"is_bookmarked"`
}

type NovelDetail struct {
	NovelSummary
	FullDescription string   `json:"full_description"`
	Bookmarks       int      `json:"bookmarks"`
	Words           int      `json:"words"`
	PublishDate     string   `json:"publish_date,omitempty"`
	Language        string   `json:"language,omitempty"`
	ContentRating   string   `json:"content_rating,omitempty"`
	Tags            []string `json:"tags"`
	AuthorBio       string   `json:"author_bio,omitempty"`
}
