package models

type AuthoredNovel struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	CoverImage   string  `json:"cover_image,omitempty"`
	Status       Status  `json:"status"`
	Chapters     int     `json:"chapters"`
	TotalViews   int     `json:"total_views"`
	MonthlyViews int     `json:"monthly_views"`
	Likes        int     `json:"likes"`
	Bookmarks    int     `json:"bookmarks"`
	Rating       float64 `json:"rating"`
	Reviews      int     `json:"reviews"`
	LastUpdated  string  `json:"last_updated"`
}

type AuthorStats struct {
	TotalViews     int     `json:"total_views"`
	TotalLikes     int     `json:"total_likes"`
	TotalBookmarks int     `json:"total_bookmarks"`
	Followers      int     `json:"followers"`
	MonthlyGrowth  string  `json:"monthly_growth"`
	AverageRating  float64 `json:"average_rating"`
}

type Activity struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Novel   string `json:"novel,omitempty"`
	Time    string `json:"time"`
}

type AuthorData struct {
	Name           string          `json:"name"`
	Novels         []AuthoredNovel `json:"novels"`
	Stats          AuthorStats     `json:"stats"`
	RecentActivity []Activity      `json:"recent_activity"`
}
