package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"spacebook/internal/service"
	"spacebook/internal/session"
	"spacebook/internal/storage"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "spacebook_session"

const accountIDKey = "accountID"

// Handler wires HTTP routes to domain services.
type Handler struct {
	accounts service.AccountService
	posts    service.PostService
	sessions *session.Store
	uploads  storage.Service
	logger   *logrus.Logger
}

func NewHandler(
	accounts service.AccountService,
	posts service.PostService,
	sessions *session.Store,
	uploads storage.Service,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		accounts: accounts,
		posts:    posts,
		sessions: sessions,
		uploads:  uploads,
		logger:   logger,
	}
}

// RegisterRoutes attaches every route to the router. uploadDir is served at
// /uploads when non-empty (the disk sink; the S3 sink records absolute URLs
// and needs no local serving).
func (h *Handler) RegisterRoutes(router *gin.Engine, staticDir, uploadDir string) {
	router.GET("/", h.landing)
	router.GET("/signup", h.signupForm)
	router.POST("/signup", h.signup)
	router.GET("/login", h.loginForm)
	router.POST("/login", h.login)
	router.GET("/logout", h.logout)

	authed := router.Group("/", h.requireSession())
	{
		authed.GET("/home", h.home)
		authed.GET("/feed", h.feed)
		authed.POST("/post", h.createPost)
		authed.GET("/profile", h.profile)
		authed.POST("/upload-profile-pic", h.uploadProfilePic)
	}

	if staticDir != "" {
		router.Static("/static", staticDir)
	}
	if uploadDir != "" {
		router.Static("/uploads", uploadDir)
	}
}

// requireSession gates protected routes. A missing or unresolvable token
// redirects to the landing page instead of executing the handler.
func (h *Handler) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		accountID, err := h.sessions.Resolve(token)
		if err != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Set(accountIDKey, accountID)
		c.Next()
	}
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookieName, token, 0, "/", "", false, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

// fail logs the underlying error and renders the generic failure page. No
// structured error detail reaches the client.
func (h *Handler) fail(c *gin.Context, err error, op string) {
	h.logger.WithError(err).Errorf("%s failed", op)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
}

// raw marks persisted user content as pre-rendered HTML so templates emit it
// verbatim. This reproduces the stored-and-reflected rendering of the original
// application and is a documented security defect, not an accident; see
// DESIGN.md before "fixing" it.
func raw(s string) template.HTML {
	return template.HTML(s)
}
