package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Santosh7017/NoteBook/internal/auth/credentials"
	"github.com/Santosh7017/NoteBook/internal/logger"
	"github.com/Santosh7017/NoteBook/internal/middleware"
	"github.com/Santosh7017/NoteBook/internal/user"
)

// invalidCredentialsMsg is deliberately identical for unknown email and
// wrong password so the response leaks nothing about which occurred.
const invalidCredentialsMsg = "please login using correct credentials"

type createUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUser handles local signup and returns a freshly issued token.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	if errs := validateSignup(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	// Friendly pre-check. The unique index on LOWER(email) is the
	// authoritative guard against concurrent duplicate signups.
	_, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err == nil {
		h.duplicateEmail(c)
		return
	}
	if !errors.Is(err, user.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	hash, err := credentials.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	u, err := h.users.Create(c.Request.Context(), user.NewUser{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: &hash,
	})
	if errors.Is(err, user.ErrDuplicateEmail) {
		h.duplicateEmail(c)
		return
	}
	if err != nil {
		logger.Error("signup: failed to create user", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	authtoken, err := h.tokens.Issue(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"authtoken": authtoken,
		"name":      u.Name,
	})
}

// Login handles local password login. The session store is never
// touched here; the token is the whole login state.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	if errs := validateLogin(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	u, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, user.ErrNotFound) {
		h.invalidCredentials(c)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// OAuth-only users have no password hash and cannot log in locally.
	if u.PasswordHash == nil || !credentials.VerifyPassword(*u.PasswordHash, req.Password) {
		h.invalidCredentials(c)
		return
	}

	authtoken, err := h.tokens.Issue(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"authtoken": authtoken,
		"name":      u.Name,
	})
}

// GetUser resolves the authenticated user behind the token gate. This
// is the lookup every protected collaborator (e.g. note CRUD) relies
// on; it never returns the password hash.
func (h *Handler) GetUser(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	u, err := h.users.GetByID(c.Request.Context(), userID)
	if errors.Is(err, user.ErrNotFound) {
		// Valid signature over an id that no longer exists.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, u)
}

func (h *Handler) duplicateEmail(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "a user with this email already exists",
	})
}

func (h *Handler) invalidCredentials(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   invalidCredentialsMsg,
	})
}
