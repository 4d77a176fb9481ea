package reviews

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"novelverse/internal/backend"
	"novelverse/internal/catalog"
	"novelverse/pkg/models"
)

type Handler struct {
	Store catalog.Store
	API   backend.API
}

func NewHandler(store catalog.Store, api backend.API) *Handler {
	return &Handler{Store: store, API: api}
}

// RegisterRoutes mounts under the /novel group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:id/reviews", h.listByNovel)
	rg.POST("/:id/reviews", h.create)
}

func (h *Handler) novelExists(c *gin.Context, id string) bool {
	n, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "reviews get novel", "novel_id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return false
	}
	if n == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return false
	}
	return true
}

func (h *Handler) listByNovel(c *gin.Context) {
	novelID := strings.TrimSpace(c.Param("id"))
	if !h.novelExists(c, novelID) {
		return
	}

	limit := parseInt(c.Query("limit"), 20)
	offset := parseInt(c.Query("offset"), 0)

	all := ForNovel(novelID)
	start := min(max(offset, 0), len(all))
	end := min(start+max(limit, 0), len(all))

	c.JSON(http.StatusOK, gin.H{
		"total":  len(all),
		"limit":  limit,
		"offset": offset,
		"items":  all[start:end],
	})
}

type createReq struct {
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	novelID := strings.TrimSpace(c.Param("id"))
	if !h.novelExists(c, novelID) {
		return
	}

	d := models.ReviewDraft{NovelID: novelID, Author: req.Author, Rating: req.Rating, Content: req.Content}
	if err := Validate(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.API.SubmitReview(c.Request.Context(), d)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "submit review", "novel_id", novelID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	c.JSON(http.StatusCreated, models.Review{
		ID:      id,
		NovelID: d.NovelID,
		Author:  d.Author,
		Rating:  d.Rating,
		Date:    "just now",
		Content: d.Content,
	})
}

func parseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
