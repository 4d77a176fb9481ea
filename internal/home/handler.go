package home

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
	rg.GET("/", h.page)
	rg.GET("/search", h.search) // header and hero search forms
}

func (h *Handler) page(c *gin.Context) {
	novels, err := h.Store.List(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "home list novels", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, BuildPage(novels))
}

func (h *Handler) search(c *gin.Context) {
	target, ok := SearchTarget(c.Query("q"))
	if !ok {
		back := c.Request.Referer()
		if back == "" {
			back = "/"
		}
		c.Redirect(http.StatusSeeOther, back)
		return
	}
	c.Redirect(http.StatusSeeOther, target)
}
