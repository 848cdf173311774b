package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"spacebook/internal/service"
)

// defaultAvatarPath is substituted at render time when an account has no
// avatar; it is never persisted.
const defaultAvatarPath = "/static/default-avatar.svg"

func (h *Handler) profile(c *gin.Context) {
	accountID := c.GetInt64(accountIDKey)

	account, err := h.accounts.GetByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		h.fail(c, err, "load account")
		return
	}

	avatar := account.AvatarPath
	if avatar == "" {
		avatar = defaultAvatarPath
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Name":       raw(account.Name),
		"Email":      raw(account.Email),
		"Birthday":   raw(account.Birthday),
		"Network":    raw(account.Network),
		"AvatarPath": avatar,
	})
}

// uploadProfilePic overwrites the account's avatar path. A request without a
// file is a no-op redirect, not an error. The previous image file stays on
// the sink.
func (h *Handler) uploadProfilePic(c *gin.Context) {
	accountID := c.GetInt64(accountIDKey)

	file, err := c.FormFile("image")
	if err != nil || file == nil {
		c.Redirect(http.StatusFound, "/profile")
		return
	}

	src, err := file.Open()
	if err != nil {
		h.fail(c, err, "open upload")
		return
	}
	defer src.Close()

	avatarPath, err := h.uploads.Store(c.Request.Context(), file.Filename, src)
	if err != nil {
		h.fail(c, err, "store upload")
		return
	}

	if _, err := h.accounts.SetAvatar(c.Request.Context(), accountID, avatarPath); err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		h.fail(c, err, "set avatar")
		return
	}

	c.Redirect(http.StatusFound, "/profile")
}
