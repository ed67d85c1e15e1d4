package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Santosh7017/NoteBook/internal/auth/provider"
	"github.com/Santosh7017/NoteBook/internal/auth/resolver"
	"github.com/Santosh7017/NoteBook/internal/logger"
	"github.com/Santosh7017/NoteBook/internal/session"
	"github.com/Santosh7017/NoteBook/internal/token"
	"github.com/Santosh7017/NoteBook/internal/user"
)

// exchangeTimeout bounds the provider code exchange so a hung provider
// cannot hang the callback request.
const exchangeTimeout = 10 * time.Second

// Handler is the auth gateway: it owns every decision about who a
// request is from. Local logins are stateless (token in, token out);
// the google leg lands in the session store and is promoted to a token
// at /login/success. After that both paths look identical.
type Handler struct {
	users      user.Store
	tokens     *token.Codec
	providers  *provider.Registry
	sessions   session.Store
	resolver   resolver.Resolver
	successURL string
}

func New(
	users user.Store,
	tokens *token.Codec,
	registry *provider.Registry,
	sessions session.Store,
	resolver resolver.Resolver,
	successURL string,
) *Handler {
	return &Handler{
		users:      users,
		tokens:     tokens,
		providers:  registry,
		sessions:   sessions,
		resolver:   resolver,
		successURL: successURL,
	}
}

// RegisterRoutes mounts all auth endpoints. requireToken is the token
// gate shared with the rest of the API.
func (h *Handler) RegisterRoutes(r *gin.Engine, requireToken gin.HandlerFunc) {
	api := r.Group("/api/auth")
	api.POST("/createuser", h.CreateUser)
	api.POST("/login", h.Login)
	api.POST("/getuser", requireToken, h.GetUser)

	r.GET("/auth/google", h.GoogleLogin)
	r.GET("/auth/google/callback", h.GoogleCallback)
	r.GET("/login/failed", h.LoginFailed)
	r.GET("/login/success", h.LoginSuccess)
	r.GET("/logout", h.Logout)
}

// GoogleLogin returns the provider authorization URL instead of
// redirecting; the frontend performs the navigation itself.
func (h *Handler) GoogleLogin(c *gin.Context) {
	p, err := h.providers.Get("google")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "oauth not configured"})
		return
	}

	state := generateState(c)
	_, codeChallenge := generatePKCE(c)

	c.JSON(http.StatusOK, gin.H{
		"url": p.AuthCodeURL(state, codeChallenge),
	})
}

func (h *Handler) GoogleCallback(c *gin.Context) {
	p, err := h.providers.Get("google")
	if err != nil {
		h.failLogin(c, "oauth not configured", nil)
		return
	}

	if !validateState(c) {
		h.failLogin(c, "oauth state mismatch", nil)
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		h.failLogin(c, "provider returned error", map[string]any{
			"error": errParam,
			"desc":  c.Query("error_description"),
		})
		return
	}

	code := c.Query("code")
	if code == "" {
		h.failLogin(c, "callback missing code", nil)
		return
	}

	codeVerifier := getPKCEVerifier(c)
	if codeVerifier == "" {
		h.failLogin(c, "missing pkce verifier", nil)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), exchangeTimeout)
	defer cancel()

	identity, err := p.ExchangeCode(ctx, code, codeVerifier)
	if err != nil {
		h.failLogin(c, "code exchange failed", map[string]any{"error": err.Error()})
		return
	}

	userID, err := h.resolver.Resolve(ctx, identity)
	if err != nil {
		h.failLogin(c, "failed to resolve user", map[string]any{"error": err.Error()})
		return
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		h.failLogin(c, "failed to create session id", map[string]any{"error": err.Error()})
		return
	}

	expiresAt := time.Now().Add(session.DefaultTTL)

	err = h.sessions.Create(c.Request.Context(), session.Session{
		SessionID: sessionID,
		UserID:    userID,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		h.failLogin(c, "failed to persist session", map[string]any{"error": err.Error()})
		return
	}

	session.SetCookie(c.Writer, sessionID, expiresAt, session.CookieOptions{
		SameSite: http.SameSiteLaxMode,
	})

	logger.Info("oauth login succeeded", map[string]any{
		"provider": identity.Provider,
		"user_id":  userID,
	})

	c.Redirect(http.StatusFound, h.successURL)
}

// failLogin logs the failure and sends the browser to /login/failed.
// The redirect carries no detail about what went wrong.
func (h *Handler) failLogin(c *gin.Context, msg string, fields map[string]any) {
	logger.Warn("oauth callback failed: "+msg, fields)
	c.Redirect(http.StatusFound, "/login/failed")
}

func (h *Handler) LoginFailed(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error":   true,
		"message": "user failed to authenticate",
	})
}

// LoginSuccess is the only bridge from session identity to token
// identity. The frontend calls it unconditionally on load, so "no
// session" must be a clean 403, not a server error.
func (h *Handler) LoginSuccess(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		h.notAuthorized(c)
		return
	}

	sess, err := h.sessions.Get(c.Request.Context(), cookie.Value)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if sess == nil {
		h.notAuthorized(c)
		return
	}

	if time.Now().After(sess.ExpiresAt) {
		_ = h.sessions.Delete(c.Request.Context(), sess.SessionID)
		h.notAuthorized(c)
		return
	}

	u, err := h.users.GetByID(c.Request.Context(), sess.UserID)
	if errors.Is(err, user.ErrNotFound) {
		h.notAuthorized(c)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	accessToken, err := h.tokens.Issue(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"error":       false,
		"accessToken": accessToken,
		"user":        u,
	})
}

func (h *Handler) notAuthorized(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"error":   true,
		"message": "not authorized",
	})
}

// Logout destroys the session if one exists and always reports
// success. Already-issued tokens stay valid; discarding them is the
// client's job.
func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(c.Request.Context(), cookie.Value); err != nil {
			logger.Warn("logout: failed to delete session", map[string]any{
				"error": err.Error(),
			})
		}
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		SameSite: http.SameSiteLaxMode,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}
