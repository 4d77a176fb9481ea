package genres

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
	rg.GET("", h.directory)
	rg.GET("/:id", h.genre)
}

func (h *Handler) directory(c *gin.Context) {
	c.JSON(http.StatusOK, BuildDirectory())
}

func (h *Handler) genre(c *gin.Context) {
	g, ok := Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "genre not found"})
		return
	}
	novels, err := h.Store.List(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "genre list novels", "genre", g.ID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, NewState(g, c.Request.URL.Query()).Page(novels))
}
