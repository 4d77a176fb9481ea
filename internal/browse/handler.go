package browse

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, search ...gin.HandlerFunc) {
	rg.GET("", append(search, h.page)...)
	rg.POST("/search", h.submit)
}

func (h *Handler) page(c *gin.Context) {
	novels, err := h.Store.List(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "browse list novels", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	st := NewState(c.Request.URL.Query())
	c.JSON(http.StatusOK, st.Page(novels))
}

type searchReq struct {
	Search string `json:"search" form:"search"`
}

// submit turns a search form post into the canonical browse URL.
func (h *Handler) submit(c *gin.Context) {
	var req searchReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
		return
	}
	st := NewState(c.Request.URL.Query())
	st.Search = req.Search
	q := st.SearchParams(c.Request.URL.Query())
	target := "/browse"
	if enc := q.Encode(); enc != "" {
		target += "?" + enc
	}
	c.Redirect(http.StatusSeeOther, target)
}
