package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/mutantsite/internal/service"
)

type postPayload struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	CoverURL string `json:"coverUrl"`
	Status   string `json:"status"`
}

// GetPosts lists posts for the admin screen with search and status filters.
func (a *API) GetPosts(c *gin.Context) {
	filter := service.PostFilter{
		Search:  strings.TrimSpace(c.Query("search")),
		Status:  strings.TrimSpace(c.Query("status")),
		Page:    parsePositiveInt(c.DefaultQuery("page", "1"), 1),
		PerPage: parsePositiveInt(c.DefaultQuery("perPage", "20"), 20),
	}

	result, err := a.posts.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":          result.Posts,
		"total":          result.Total,
		"publishedCount": result.PublishedCount,
		"draftCount":     result.DraftCount,
		"totalPages":     result.TotalPages,
		"page":           result.Page,
	})
}

// GetPost fetches one post for editing.
func (a *API) GetPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := a.posts.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "post not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// CreatePost persists a new post for the signed-in admin.
func (a *API) CreatePost(c *gin.Context) {
	var payload postPayload
	if !bindJSON(c, &payload, "invalid post payload") {
		return
	}

	post, err := a.posts.Create(service.PostInput{
		Title:    payload.Title,
		Slug:     payload.Slug,
		Summary:  payload.Summary,
		Content:  payload.Content,
		CoverURL: payload.CoverURL,
		Status:   payload.Status,
		UserID:   sessionUserID(c),
	})
	if err != nil {
		respondPostError(c, err)
		return
	}

	a.revalidatePost(post.Slug)
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// UpdatePost applies updates to an existing post.
func (a *API) UpdatePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid post id")
		return
	}

	var payload postPayload
	if !bindJSON(c, &payload, "invalid post payload") {
		return
	}

	post, err := a.posts.Update(id, service.PostInput{
		Title:    payload.Title,
		Slug:     payload.Slug,
		Summary:  payload.Summary,
		Content:  payload.Content,
		CoverURL: payload.CoverURL,
		Status:   payload.Status,
	})
	if err != nil {
		respondPostError(c, err)
		return
	}

	a.revalidatePost(post.Slug)
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// DeletePost removes a post with its comments and likes.
func (a *API) DeletePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := a.posts.Delete(id); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "post not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete post")
		return
	}

	a.hooks.Revalidate("/blog")
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted."})
}

func (a *API) revalidatePost(postSlug string) {
	a.hooks.Revalidate("/blog", "/blog/"+postSlug)
}

func respondPostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		respondError(c, http.StatusNotFound, "post not found")
	case errors.Is(err, service.ErrPostTitleMissing):
		respondError(c, http.StatusBadRequest, "title is required")
	case errors.Is(err, service.ErrPostSlugTaken):
		respondError(c, http.StatusConflict, "slug is already in use")
	case errors.Is(err, service.ErrPostStatusInvalid):
		respondError(c, http.StatusBadRequest, "status must be draft or published")
	default:
		respondError(c, http.StatusInternalServerError, "failed to save post")
	}
}

func sessionUserID(c *gin.Context) uint {
	session := sessions.Default(c)
	if id, ok := session.Get("user_id").(uint); ok {
		return id
	}
	return 0
}
