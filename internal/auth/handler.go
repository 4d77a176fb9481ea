package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"novelverse/internal/backend"
	"novelverse/pkg/models"
)

type Handler struct {
	API  backend.API
	Cost int
}

func NewHandler(api backend.API) *Handler {
	return &Handler{API: api, Cost: bcrypt.DefaultCost}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/login", h.loginPage)
	rg.POST("/login", h.login)
	rg.GET("/signup", h.signupPage)
	rg.POST("/signup", h.signup)
	rg.GET("/forgot-password", h.forgotPage)
	rg.POST("/forgot-password", h.forgot)
}

func (h *Handler) loginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form":            models.LoginRequest{},
		"signup_url":      "/auth/signup",
		"forgot_password": "/auth/forgot-password",
	})
}

func (h *Handler) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := CheckLogin(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.API.Login(c.Request.Context(), req); err != nil {
		// don't reveal which part failed
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": req.Email, "redirect": "/"})
}

func (h *Handler) signupPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form":      models.SignupRequest{},
		"login_url": "/auth/login",
	})
}

func (h *Handler) signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := CheckSignup(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "alert": alertText(err)})
		return
	}

	acct, err := NewAccount(req, h.Cost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "hash failed"})
		return
	}

	id, err := h.API.Register(c.Request.Context(), acct)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "register", "username", acct.Username, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create user failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":       id,
			"username": acct.Username,
			"email":    acct.Email,
		},
		"redirect": "/auth/login",
	})
}

// forgotPage renders the form, or the sent notice when submitted=true.
// retry=1 is the "try a different email" link.
func (h *Handler) forgotPage(c *gin.Context) {
	submitted, _ := strconv.ParseBool(c.Query("submitted"))
	st := ForgotState{Email: c.Query("email"), Submitted: submitted}
	if c.Query("retry") != "" {
		st.TryDifferentEmail()
	}
	c.JSON(http.StatusOK, st)
}

type forgotReq struct {
	Email string `json:"email" form:"email"`
}

func (h *Handler) forgot(c *gin.Context) {
	var req forgotReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	var st ForgotState
	if err := st.Submit(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.API.ResetPassword(c.Request.Context(), st.Email); err != nil {
		slog.ErrorContext(c.Request.Context(), "reset password", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reset failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"email":     st.Email,
		"submitted": st.Submitted,
		"message":   "We've sent a password reset link to " + st.Email,
		"retry_url": "/auth/forgot-password?retry=1&email=" + url.QueryEscape(st.Email),
		"login_url": "/auth/login",
	})
}

// alertText is the message the signup form shows for a rejected submission.
func alertText(err error) string {
	switch {
	case errors.Is(err, ErrPasswordMismatch):
		return "Passwords don't match!"
	case errors.Is(err, ErrTermsNotAccepted):
		return "Please agree to the terms and conditions"
	}
	return err.Error()
}
