package models

// Genre is one entry of the genre directory.
type Genre struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	NovelCount  int      `json:"novel_count"`
	Icon        string   `json:"icon"`
	PopularTags []string `json:"popular_tags"`
	TopNovels   []string `json:"top_novels"`
}
