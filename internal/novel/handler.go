package novel

import (
	"log/slog"
	"net/http"
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
	rg.GET("/:id", h.details)
}

// details renders one novel. toggle=bookmark or toggle=follow flips the
// matching button state before rendering.
func (h *Handler) details(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	n, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "novel get", "novel_id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if n == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	st := NewState(c.Request.URL.Query())
	switch c.Query("toggle") {
	case "bookmark":
		st.ToggleBookmark()
	case "follow":
		st.ToggleFollow()
	}
	c.JSON(http.StatusOK, st.Page(*n))
}
