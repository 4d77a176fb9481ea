package catalog

import "novelverse/pkg/models"

// Seed returns a fresh copy of the sample catalog.
func Seed() []models.NovelSummary {
	return []models.NovelSummary{
		{
			ID:           "1",
			Title:        "The Mystic Academy",
			Author:       "Elena Starweaver",
			Description:  "A young mage discovers her extraordinary powers at the prestigious Mystic Academy, where ancient secrets and dangerous magic await. Follow Aria as she navigates friendship, rivalry, and the mysteries of her past in this enchanting tale of magic and self-discovery.",
			CoverImage:   "/assets/mystic-academy.jpg",
			Genres:       []string{"Fantasy", "Magic", "Academy", "Coming of Age"},
			Rating:       4.8,
			Views:        125000,
			Likes:        8900,
			Chapters:     45,
			Status:       models.StatusOngoing,
			LastUpdated:  "2 days ago",
			IsBookmarked: true,
		},
		{
			ID:          "2",
			Title:       "Digital Realms",
			Author:      "Cyber Phoenix",
			Description: "In a world where virtual reality and reality blend seamlessly, hacker Zane must navigate multiple digital dimensions to prevent a catastrophic system collapse that threatens both the virtual and real worlds.",
			CoverImage:  "/assets/digital-realms.jpg",
			Genres:      []string{"Sci-Fi", "Cyberpunk", "VR", "Thriller"},
			Rating:      4.6,
			Views:       98000,
			Likes:       7200,
			Chapters:    38,
			Status:      models.StatusOngoing,
			LastUpdated: "1 day ago",
		},
		{
			ID:          "3",
			Title:       "Dragon's Crown",
			Author:      "Mythril Forge",
			Description: "An epic tale of dragons, ancient kingdoms, and the legendary Dragon's Crown that holds the power to unite or destroy the entire realm. Join Prince Aldric on his quest to restore balance to a world on the brink of war.",
			CoverImage:  "/assets/dragons-crown.jpg",
			Genres:      []string{"Fantasy", "Dragons", "Epic", "Adventure"},
			Rating:      4.9,
			Views:       210000,
			Likes:       15600,
			Chapters:    62,
			Status:      models.StatusCompleted,
			LastUpdated: "1 week ago",
		},
		{
			ID:          "4",
			Title:       "Starlit Dreams",
			Author:      "Luna Nightshade",
			Description: "A heartwarming romance that spans across time and space, where two souls destined to be together find each other among the stars, defying the laws of physics and fate itself.",
			CoverImage:  "/assets/starlit-dreams.jpg",
			Genres:      []string{"Romance", "Fantasy", "Time Travel", "Supernatural"},
			Rating:      4.7,
			Views:       87000,
			Likes:       12300,
			Chapters:    28,
			Status:      models.StatusOngoing,
			LastUpdated: "3 days ago",
		},
	}
}
