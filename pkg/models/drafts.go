package models

type NovelDraft struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Synopsis      string   `json:"synopsis"`
	Genres        []string `json:"genres"`
	Tags          []string `json:"tags"`
	ContentRating string   `json:"content_rating"`
	Language      string   `json:"language"`
	Status        Status   `json:"status"`
	CoverImage    string   `json:"cover_image,omitempty"`
}

type ChapterDraft struct {
	NovelID     string `json:"novel_id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	AuthorNote  string `json:"author_note"`
	IsPublished bool   `json:"is_published"`
}

type SignupRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	AgreeToTerms    bool   `json:"agree_to_terms"`
	Newsletter      bool   `json:"newsletter"`
}

// Account is what a signup hands to the backend; the plain password never leaves the auth page.
type Account struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Newsletter   bool   `json:"newsletter"`
}

type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type ReviewDraft struct {
	NovelID string `json:"novel_id"`
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}
