package trending

import (
	"log/slog"
	"net/http"

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
	rg.GET("", h.page)
	rg.GET("/entries", h.entries)
}

func (h *Handler) page(c *gin.Context) {
	novels, err := h.Store.List(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "trending list novels", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, NewState(c.Request.URL.Query()).Page(novels))
}

// entries returns the raw trending records with their timeframe view count.
func (h *Handler) entries(c *gin.Context) {
	novels, err := h.Store.List(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "trending list novels", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	items := NewState(c.Request.URL.Query()).Entries(novels)
	c.JSON(http.StatusOK, gin.H{"total": len(items), "items": items})
}
