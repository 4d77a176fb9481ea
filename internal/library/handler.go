package library

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"novelverse/internal/backend"
	"novelverse/internal/catalog"
)

type Handler struct {
	Store catalog.Store
	API   backend.API
}

func NewHandler(store catalog.Store, api backend.API) *Handler {
	return &Handler{Store: store, API: api}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.page)
	rg.POST("/batch", h.batch)
}

// page renders the shelf. toggle=<id> flips one selection and toggle_all=1
// flips the whole filtered list before rendering.
func (h *Handler) page(c *gin.Context) {
	novels, err := h.Store.List(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "library list novels", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	entries := Entries(novels)
	st := NewState(c.Request.URL.Query())
	if id := strings.TrimSpace(c.Query("toggle")); id != "" {
		st.ToggleSelect(id)
	}
	if c.Query("toggle_all") != "" {
		st.ToggleSelectAll(st.Filtered(entries))
	}
	c.JSON(http.StatusOK, st.Page(entries))
}

type batchReq struct {
	Action   string   `json:"action"`
	NovelIDs []string `json:"novel_ids"`
}

func normalizeAction(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "download":
		return "download"
	case "remove", "delete":
		return "remove"
	default:
		return ""
	}
}

func (h *Handler) batch(c *gin.Context) {
	var req batchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	action := normalizeAction(req.Action)
	if action == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be one of: download, remove"})
		return
	}
	if len(req.NovelIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "novel_ids required"})
		return
	}
	if err := h.API.LibraryBatch(c.Request.Context(), action, req.NovelIDs); err != nil {
		slog.ErrorContext(c.Request.Context(), "library batch", "action", action, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "batch failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"action": action, "count": len(req.NovelIDs)})
}
