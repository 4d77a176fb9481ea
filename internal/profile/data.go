package profile

import (
	"novelverse/pkg/models"
)

// Current returns the signed-in reader's profile.
func Current() models.UserProfile {
	return models.UserProfile{
		ID:          "user-123",
		Username:    "BookwormExtraordinaire",
		DisplayName: "Alex Chen",
		Email:       "alex.chen@example.com",
		Bio:         "Passionate reader and aspiring author. I love diving into fantasy worlds and crafting my own magical stories. Currently working on my first light novel series!",
		JoinDate:    "January 2024",
		Stats: models.UserStats{
			NovelsRead:   127,
			ChaptersRead: 2845,
			Bookmarked:   23,
			WordsWritten: 156000,
			Followers:    245,
			Following:    89,
		},
		Badges: []models.Badge{
			{Name: "Early Adopter", Icon: "🌟", Description: "Joined NovelVerse in its first month"},
			{Name: "Avid Reader", Icon: "📚", Description: "Read over 100 novels"},
			{Name: "Speed Reader", Icon: "⚡", Description: "Read 50 chapters in a day"},
			{Name: "Review Master", Icon: "✍️", Description: "Written 50+ reviews"},
		},
		ReadingHistory: []models.HistoryItem{
			{NovelID: "1", Title: "The Mystic Academy", Author: "Elena Starweaver", CoverImage: "/assets/mystic-academy.jpg",
				Chapter: 38, TotalChapters: 45, Progress: 85, Rating: 5, LastRead: "2 hours ago"},
			{NovelID: "2", Title: "Digital Realms", Author: "Cyber Phoenix", CoverImage: "/assets/digital-realms.jpg",
				Chapter: 23, TotalChapters: 38, Progress: 60, Rating: 4, LastRead: "1 day ago"},
		},
		Bookmarked: []models.NovelSummary{
			{
				ID:           "1",
				Title:        "The Mystic Academy",
				Author:       "Elena Starweaver",
				Description:  "A young mage discovers her extraordinary powers at the prestigious Mystic Academy.",
				CoverImage:   "/assets/mystic-academy.jpg",
				Genres:       []string{"Fantasy", "Magic", "Academy"},
				Rating:       4.8,
				Views:        125000,
				Likes:        8900,
				Chapters:     45,
				Status:       models.StatusOngoing,
				LastUpdated:  "2 days ago",
				IsBookmarked: true,
			},
		},
	}
}
