package catalog

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, search ...gin.HandlerFunc) {
	rg.GET("", append(search, h.list)...) // GET /api/novels
	rg.GET("/:id", h.getByID)            // GET /api/novels/:id
}

func (h *Handler) list(c *gin.Context) {
	novels, err := h.Store.List(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "list novels", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	crit := Criteria{
		Query: c.Query("search"),
		Genre: c.DefaultQuery("genre", AllGenres),
		Sort:  ParseSortKey(c.Query("sort"), SortPopular),
	}
	items := Apply(novels, crit)

	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) getByID(c *gin.Context) {
	n, err := h.Store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "get novel", "id", c.Param("id"), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if n == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, n)
}
