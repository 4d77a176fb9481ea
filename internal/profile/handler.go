package profile

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.page)
}

func (h *Handler) page(c *gin.Context) {
	editing, _ := strconv.ParseBool(c.Query("editing"))
	st := &State{Editing: editing}
	if c.Query("toggle") == "edit" {
		st.ToggleEditing()
	}
	c.JSON(http.StatusOK, st.Page(Current()))
}
