package models

type ChapterListing struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	PublishDate string `json:"publish_date"`
	IsRead      bool   `json:"is_read"`
}

// Chapter is the readable body of one chapter.
type Chapter struct {
	NovelID       string `json:"novel_id"`
	NovelTitle    string `json:"novel_title"`
	Author        string `json:"author"`
	Number        int    `json:"number"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	WordCount     int    `json:"word_count"`
	TotalChapters int    `json:"total_chapters"`
}
