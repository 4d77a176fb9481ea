package settings

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"novelverse/internal/backend"
	"novelverse/internal/profile"
)

const deletePrompt = "Are you sure you want to delete your account? This action cannot be undone."

type Handler struct {
	API backend.API
}

func NewHandler(api backend.API) *Handler {
	return &Handler{API: api}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.page)
	rg.PUT("/:section", h.save)
	rg.POST("/export", h.export)
	rg.DELETE("/account", h.deleteAccount)
}

type Options struct {
	EmailDigest   []Option `json:"email_digest"`
	FontSize      []Option `json:"font_size"`
	FontFamily    []Option `json:"font_family"`
	Theme         []Option `json:"theme"`
	Visibility    []Option `json:"profile_visibility"`
	AllowMessages []Option `json:"allow_messages"`
}

func (h *Handler) page(c *gin.Context) {
	tab := SectionProfile
	if sec, err := ParseSection(c.Query("tab")); err == nil {
		tab = sec
	}
	c.JSON(http.StatusOK, gin.H{
		"tab":      tab,
		"sections": Sections,
		"settings": Defaults(),
		"options": Options{
			EmailDigest:   DigestOptions,
			FontSize:      FontSizeOptions,
			FontFamily:    FontFamilyOptions,
			Theme:         ThemeOptions,
			Visibility:    VisibilityOptions,
			AllowMessages: MessageOptions,
		},
		"initials": profile.Initials(Defaults().Profile.DisplayName),
	})
}

// save binds the body onto the section's current values, so omitted fields
// keep them.
func (h *Handler) save(c *gin.Context) {
	sec, err := ParseSection(c.Param("section"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	cur := Defaults()
	var v any
	switch sec {
	case SectionProfile:
		v = &cur.Profile
	case SectionNotifications:
		v = &cur.Notifications
	case SectionReading:
		v = &cur.Reading
	case SectionPrivacy:
		v = &cur.Privacy
	}
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	switch sec {
	case SectionProfile:
		err = validateProfile(cur.Profile)
	case SectionNotifications:
		err = validateNotifications(cur.Notifications)
	case SectionReading:
		err = validateReading(cur.Reading)
	case SectionPrivacy:
		err = validatePrivacy(cur.Privacy)
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
		return
	}

	if err := h.API.SaveSettings(c.Request.Context(), string(sec), v); err != nil {
		slog.ErrorContext(c.Request.Context(), "save settings", "section", sec, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"section": sec, "saved": true, "settings": v})
}

func (h *Handler) export(c *gin.Context) {
	b, err := h.API.ExportData(c.Request.Context(), profile.Current().ID)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "export data", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="novelverse-export.yaml"`)
	c.Data(http.StatusOK, "application/yaml", b)
}

type deleteReq struct {
	Confirm bool `json:"confirm" form:"confirm"`
}

// deleteAccount needs an explicit confirm=true; anything else returns the
// prompt instead of deleting.
func (h *Handler) deleteAccount(c *gin.Context) {
	var req deleteReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if !req.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required", "prompt": deletePrompt})
		return
	}
	if err := h.API.DeleteAccount(c.Request.Context(), profile.Current().ID); err != nil {
		slog.ErrorContext(c.Request.Context(), "delete account", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "redirect": "/"})
}
