package dashboard

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"novelverse/internal/backend"
	"novelverse/internal/write"
)

type Handler struct {
	API  backend.API
	Feed Feed
	Now  func() time.Time
}

func NewHandler(api backend.API, f Feed) *Handler {
	return &Handler{API: api, Feed: f, Now: time.Now}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.page)
	rg.POST("/novels", h.createNovel)
}

func (h *Handler) page(c *gin.Context) {
	st := NewState(c.Query("new") != "")
	c.JSON(http.StatusOK, st.Page(Author(), h.Feed, h.Now()))
}

func (h *Handler) createNovel(c *gin.Context) {
	st := NewState(true)
	if err := c.ShouldBindJSON(&st.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	check := write.NewNovelForm()
	check.Title = st.Form.Title
	check.Description = st.Form.Description
	check.ContentRating = st.Form.ContentRating
	if st.Form.Language != "" {
		check.Language = st.Form.Language
	}
	if err := check.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d := st.Submit()
	slog.InfoContext(c.Request.Context(), "dashboard new novel", "title", d.Title, "genres", d.Genres)
	id, err := h.API.CreateNovel(c.Request.Context(), d)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "dashboard create novel", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":        id,
		"show_form": st.ShowForm,
		"form":      st.Form,
	})
}
