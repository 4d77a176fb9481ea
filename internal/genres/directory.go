package genres

import (
	"strings"

	"novelverse/pkg/models"
)

// Directory returns a fresh copy of the genre directory.
func Directory() []models.Genre {
	return []models.Genre{
		{ID: "fantasy", Name: "Fantasy", Description: "Magical worlds, mythical creatures, and supernatural adventures", NovelCount: 2845, Icon: "🏰",
			PopularTags: []string{"Magic", "Dragons", "Wizards", "Adventure", "Epic"}, TopNovels: []string{"1", "3"}},
		{ID: "romance", Name: "Romance", Description: "Love stories, relationships, and matters of the heart", NovelCount: 1932, Icon: "💕",
			PopularTags: []string{"Love", "Relationships", "Drama", "Modern", "Historical"}, TopNovels: []string{"4"}},
		{ID: "scifi", Name: "Sci-Fi", Description: "Futuristic technology, space exploration, and scientific concepts", NovelCount: 1254, Icon: "🚀",
			PopularTags: []string{"Technology", "Space", "AI", "Cyberpunk", "Future"}, TopNovels: []string{"2"}},
		{ID: "adventure", Name: "Adventure", Description: "Thrilling journeys, quests, and action-packed stories", NovelCount: 1876, Icon: "⚔️",
			PopularTags: []string{"Quest", "Journey", "Action", "Exploration", "Heroes"}, TopNovels: []string{}},
		{ID: "mystery", Name: "Mystery", Description: "Puzzles, investigations, and suspenseful storytelling", NovelCount: 987, Icon: "🔍",
			PopularTags: []string{"Detective", "Crime", "Suspense", "Investigation", "Thriller"}, TopNovels: []string{}},
		{ID: "action", Name: "Action", Description: "High-energy combat, battles, and adrenaline-pumping scenes", NovelCount: 1543, Icon: "💥",
			PopularTags: []string{"Combat", "Fighting", "Battle", "Martial Arts", "War"}, TopNovels: []string{}},
		{ID: "drama", Name: "Drama", Description: "Emotional stories focusing on character development", NovelCount: 1234, Icon: "🎭",
			PopularTags: []string{"Emotional", "Character", "Slice of Life", "Psychological"}, TopNovels: []string{}},
		{ID: "horror", Name: "Horror", Description: "Scary stories, supernatural terror, and psychological horror", NovelCount: 756, Icon: "👻",
			PopularTags: []string{"Scary", "Supernatural", "Psychological", "Dark", "Thriller"}, TopNovels: []string{}},
	}
}

// Lookup finds a genre by directory id, case-insensitively.
func Lookup(id string) (models.Genre, bool) {
	id = strings.TrimSpace(id)
	for _, g := range Directory() {
		if strings.EqualFold(g.ID, id) {
			return g, true
		}
	}
	return models.Genre{}, false
}
