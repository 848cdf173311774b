package http

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"spacebook/internal/service"
)

// PostView is a single feed entry shaped for the template.
type PostView struct {
	AuthorName template.HTML
	Content    template.HTML
	ImagePath  string
	CreatedAt  string
}

func (h *Handler) home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{})
}

func (h *Handler) feed(c *gin.Context) {
	posts, err := h.posts.ListPosts(c.Request.Context())
	if err != nil {
		h.fail(c, err, "list posts")
		return
	}

	views := make([]PostView, len(posts))
	for i := range posts {
		views[i] = PostView{
			AuthorName: raw(posts[i].AuthorName),
			Content:    raw(posts[i].Content),
			ImagePath:  posts[i].ImagePath,
			CreatedAt:  posts[i].CreatedAt.Format("Jan 2, 2006 15:04"),
		}
	}

	c.HTML(http.StatusOK, "feed.html", gin.H{"Posts": views})
}

// createPost appends a post for the acting account. The account is re-fetched
// by id; if it cannot be resolved the request is treated as not logged in and
// redirected, not failed. Empty posts (no text, no image) are accepted.
func (h *Handler) createPost(c *gin.Context) {
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

	content := c.PostForm("content")

	imagePath := ""
	if file, err := c.FormFile("image"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			h.fail(c, err, "open upload")
			return
		}
		defer src.Close()

		imagePath, err = h.uploads.Store(c.Request.Context(), file.Filename, src)
		if err != nil {
			h.fail(c, err, "store upload")
			return
		}
	}

	if _, err := h.posts.CreatePost(c.Request.Context(), account, content, imagePath); err != nil {
		h.fail(c, err, "create post")
		return
	}

	c.Redirect(http.StatusFound, "/feed")
}
