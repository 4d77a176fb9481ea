package dashboard

import (
	"slices"

	"novelverse/pkg/models"
)

func seedAuthor() models.AuthorData {
	return models.AuthorData{
		Name: "Alex Chen",
		Novels: []models.AuthoredNovel{
			{ID: "1", Title: "The Mystic Academy", CoverImage: "/assets/mystic-academy.jpg", Status: models.StatusOngoing, Chapters: 45,
				TotalViews: 125000, MonthlyViews: 12500, Likes: 8900, Bookmarks: 12400, Rating: 4.8, Reviews: 234, LastUpdated: "2 days ago"},
			{ID: "2", Title: "Digital Realms", CoverImage: "/assets/digital-realms.jpg", Status: models.StatusOngoing, Chapters: 38,
				TotalViews: 98000, MonthlyViews: 8900, Likes: 7200, Bookmarks: 9800, Rating: 4.6, Reviews: 187, LastUpdated: "1 day ago"},
		},
		Stats: models.AuthorStats{
			TotalViews:     223000,
			TotalLikes:     16100,
			TotalBookmarks: 22200,
			Followers:      1245,
			MonthlyGrowth:  "+15%",
			AverageRating:  4.7,
		},
		RecentActivity: []models.Activity{
			{Type: "chapter", Message: "Chapter 45: The Final Trial", Novel: "The Mystic Academy", Time: "2 days ago"},
			{Type: "review", Message: "New 5-star review", Novel: "Digital Realms", Time: "3 days ago"},
			{Type: "chapter", Message: "Chapter 38: System Override", Novel: "Digital Realms", Time: "1 week ago"},
			{Type: "milestone", Message: "Reached 100K views", Novel: "The Mystic Academy", Time: "1 week ago"},
		},
	}
}

// Author returns the signed-in author's dashboard data. The result is a
// fresh copy.
func Author() models.AuthorData {
	a := seedAuthor()
	a.Novels = slices.Clone(a.Novels)
	a.RecentActivity = slices.Clone(a.RecentActivity)
	return a
}
