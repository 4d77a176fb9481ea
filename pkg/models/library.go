package models

// LibraryEntry is a novel on the reader's shelf together with reading position.
// ReadProgress is a percentage and is not range checked.
type LibraryEntry struct {
	NovelSummary
	CurrentChapter int    `json:"current_chapter"`
	ReadProgress   int    `json:"read_progress"`
	LastRead       string `json:"last_read"`
	AddedDate      string `json:"added_date,omitempty"`
	CompletedDate  string `json:"completed_date,omitempty"`
}
