package models

type Review struct {
	ID      string `json:"id"`
	NovelID string `json:"novel_id,omitempty"`
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Date    string `json:"date"`
	Content string `json:"content"`
	Likes   int    `json:"likes"`
}
