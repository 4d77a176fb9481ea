package write

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"novelverse/internal/backend"
	"novelverse/pkg/models"
)

type Handler struct {
	API backend.API
}

func NewHandler(api backend.API) *Handler {
	return &Handler{API: api}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.page)
	rg.POST("/novels", h.createNovel)
	rg.POST("/chapters", h.createChapter)
}

type Page struct {
	Tab             string          `json:"tab"`
	AvailableGenres []string        `json:"available_genres"`
	AvailableTags   []string        `json:"available_tags"`
	ContentRatings  []string        `json:"content_ratings"`
	Languages       []string        `json:"languages"`
	Statuses        []models.Status `json:"statuses"`
	MaxGenres       int             `json:"max_genres"`
	MaxTags         int             `json:"max_tags"`
	Defaults        novelReq        `json:"defaults"`
}

func (h *Handler) page(c *gin.Context) {
	tab := c.DefaultQuery("tab", "create")
	if tab != "chapter" {
		tab = "create"
	}
	f := NewNovelForm()
	c.JSON(http.StatusOK, Page{
		Tab:             tab,
		AvailableGenres: AvailableGenres,
		AvailableTags:   AvailableTags,
		ContentRatings:  ContentRatings,
		Languages:       Languages,
		Statuses:        Statuses,
		MaxGenres:       MaxGenres,
		MaxTags:         MaxTags,
		Defaults:        novelReq{Language: f.Language, Status: string(f.Status), Genres: []string{}, Tags: []string{}},
	})
}

type novelReq struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Synopsis      string   `json:"synopsis"`
	Genres        []string `json:"genres"`
	Tags          []string `json:"tags"`
	ContentRating string   `json:"content_rating"`
	Language      string   `json:"language"`
	Status        string   `json:"status"`
	CoverImage    string   `json:"cover_image,omitempty"`
}

// formFrom replays the submitted selections through the toggles so the
// genre and tag limits hold.
func formFrom(req novelReq) *NovelForm {
	f := NewNovelForm()
	f.Title = req.Title
	f.Description = req.Description
	f.Synopsis = req.Synopsis
	f.ContentRating = req.ContentRating
	f.CoverImage = req.CoverImage
	if req.Language != "" {
		f.Language = req.Language
	}
	if req.Status != "" {
		f.Status = models.Status(req.Status)
	}
	for _, g := range req.Genres {
		if !slices.Contains(f.Genres, g) {
			f.ToggleGenre(g)
		}
	}
	for _, t := range req.Tags {
		if !slices.Contains(f.Tags, t) {
			f.ToggleTag(t)
		}
	}
	return f
}

func (h *Handler) createNovel(c *gin.Context) {
	var req novelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	f := formFrom(req)
	if err := f.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d := f.Draft()
	id, err := h.API.CreateNovel(c.Request.Context(), d)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "create novel", "title", d.Title, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":       id,
		"novel":    d,
		"counts":   gin.H{"description": fmt.Sprintf("%d/%d characters", CharCount(d.Description), MaxDescription), "synopsis": fmt.Sprintf("%d/%d characters", CharCount(d.Synopsis), MaxSynopsis)},
		"redirect": "/dashboard",
	})
}

type chapterReq struct {
	NovelID     string `json:"novel_id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	AuthorNote  string `json:"author_note"`
	IsPublished bool   `json:"is_published"`
}

func (h *Handler) createChapter(c *gin.Context) {
	var req chapterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	f := ChapterForm(req)
	if err := f.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d := f.Draft()
	id, err := h.API.CreateChapter(c.Request.Context(), d)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "create chapter", "novel_id", d.NovelID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":         id,
		"novel_id":   d.NovelID,
		"title":      d.Title,
		"published":  d.IsPublished,
		"words":      WordCount(d.Content),
		"characters": CharCount(d.Content),
	})
}
