package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutantsite/internal/service"
)

// GetPendingComments lists comments awaiting moderation.
func (a *API) GetPendingComments(c *gin.Context) {
	comments, err := a.comments.ListPending()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load comments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// ApproveComment makes a comment publicly visible.
func (a *API) ApproveComment(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := a.comments.Approve(id); err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			respondError(c, http.StatusNotFound, "comment not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to approve comment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment approved."})
}

// DeleteComment removes a comment.
func (a *API) DeleteComment(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := a.comments.Delete(id); err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			respondError(c, http.StatusNotFound, "comment not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete comment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted."})
}

// GetSubscribers lists the newsletter signups.
func (a *API) GetSubscribers(c *gin.Context) {
	subscribers, err := a.subscribers.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load subscribers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": subscribers})
}

// DeleteSubscriber removes a newsletter signup.
func (a *API) DeleteSubscriber(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid subscriber id")
		return
	}

	if err := a.subscribers.Delete(id); err != nil {
		if errors.Is(err, service.ErrSubscriberNotFound) {
			respondError(c, http.StatusNotFound, "subscriber not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete subscriber")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscriber removed."})
}
