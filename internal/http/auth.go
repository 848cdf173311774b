package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"spacebook/internal/service"
)

func (h *Handler) landing(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

func (h *Handler) signupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

func (h *Handler) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// signup creates the account and immediately opens a session for it. A
// duplicate email is rendered inline on the form, never surfaced as a
// failure status.
func (h *Handler) signup(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	birthday := c.PostForm("birthday")
	network := c.PostForm("network")

	account, err := h.accounts.Signup(c.Request.Context(), name, email, password, birthday, network)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			c.HTML(http.StatusOK, "signup.html", gin.H{
				"Error": "That email is already registered. Try logging in instead.",
			})
			return
		}
		h.fail(c, err, "signup")
		return
	}

	token, err := h.sessions.Create(account.ID)
	if err != nil {
		h.fail(c, err, "create session")
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/feed")
}

func (h *Handler) login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	account, err := h.accounts.Authenticate(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"Error": "Invalid email or password.",
			})
			return
		}
		h.fail(c, err, "login")
		return
	}

	token, err := h.sessions.Create(account.ID)
	if err != nil {
		h.fail(c, err, "create session")
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/feed")
}

// logout destroys the session if one exists. Destroying a session that is
// already gone is fine.
func (h *Handler) logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		h.sessions.Destroy(token)
	}
	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}
