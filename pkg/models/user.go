package models

type UserStats struct {
	NovelsRead   int `json:"novels_read"`
	ChaptersRead int `json:"chapters_read"`
	Bookmarked   int `json:"bookmarked"`
	WordsWritten int `json:"words_written"`
	Followers    int `json:"followers"`
	Following    int `json:"following"`
}

type Badge struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// HistoryItem is one novel in the reading history. Rating is the reader's own.
type HistoryItem struct {
	NovelID       string `json:"novel_id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	CoverImage    string `json:"cover_image,omitempty"`
	Chapter       int    `json:"chapter"`
	TotalChapters int    `json:"total_chapters"`
	Progress      int    `json:"progress"`
	Rating        int    `json:"rating"`
	LastRead      string `json:"last_read"`
}

type UserProfile struct {
	ID             string         `json:"id"`
	Username       string         `json:"username"`
	DisplayName    string         `json:"display_name"`
	Email          string         `json:"email"`
	Bio            string         `json:"bio"`
	Location       string         `json:"location,omitempty"`
	Website        string         `json:"website,omitempty"`
	JoinDate       string         `json:"join_date"`
	Avatar         string         `json:"avatar,omitempty"`
	Stats          UserStats      `json:"stats"`
	Badges         []Badge        `json:"badges"`
	ReadingHistory []HistoryItem  `json:"reading_history"`
	Bookmarked     []NovelSummary `json:"bookmarked"`
}
