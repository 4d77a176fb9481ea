package reader

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"novelverse/internal/catalog"
)

type Handler struct {
	Store catalog.Store
}

func NewHandler(store catalog.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:id/chapter/:chapter", h.read)
	rg.POST("/:id/chapter/:chapter", h.typography)
}

// chapterNumber falls back to the first chapter for anything that is not a
// positive integer.
func chapterNumber(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (h *Handler) read(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	n, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "reader get novel", "novel_id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if n == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	ch, err := Load(*n, chapterNumber(c.Param("chapter")))
	if errors.Is(err, ErrChapterOutOfRange) {
		c.JSON(http.StatusNotFound, gin.H{"error": "chapter not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
		return
	}
	c.JSON(http.StatusOK, BuildPage(ch, ParseTypography(c.Request.URL.Query())))
}

type typographyReq struct {
	Typography
	Adjust string `json:"adjust"`
}

// typography applies a settings-panel change and echoes the clamped settings.
func (h *Handler) typography(c *gin.Context) {
	req := typographyReq{Typography: DefaultTypography()}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	c.JSON(http.StatusOK, req.Typography.Adjust(req.Adjust))
}
