package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mutantsite/internal/mailer"
	"github.com/mutantsite/internal/service"
)

// visitorCookie identifies a browser across likes so repeats from the same
// visitor do not inflate the counter.
const (
	visitorCookie       = "mt_visitor"
	visitorCookieMaxAge = 365 * 24 * 60 * 60
)

type commentPayload struct {
	Author string `json:"author"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

type subscribePayload struct {
	Email string `json:"email"`
}

type contactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// LikePost bumps the like counter of a published post. First-time visitors
// get a token cookie; a repeat like under the same token returns the current
// total without counting again.
func (a *API) LikePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid post id")
		return
	}

	token, err := c.Cookie(visitorCookie)
	if err != nil || strings.TrimSpace(token) == "" {
		token = uuid.NewString()
	}

	count, counted, err := a.likes.Like(id, token)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "post not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to record like")
		return
	}

	c.SetCookie(visitorCookie, token, visitorCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"likes": count, "counted": counted})
}

// CreateComment stores a reader comment for moderation.
func (a *API) CreateComment(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid post id")
		return
	}

	var payload commentPayload
	if !bindJSON(c, &payload, "invalid comment payload") {
		return
	}

	comment, err := a.comments.Submit(service.CommentInput{
		PostID: id,
		Author: payload.Author,
		Email:  payload.Email,
		Body:   payload.Body,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentAuthorMissing):
			respondError(c, http.StatusBadRequest, "name is required")
		case errors.Is(err, service.ErrCommentBodyMissing):
			respondError(c, http.StatusBadRequest, "comment is required")
		case errors.Is(err, service.ErrPostNotFound):
			respondError(c, http.StatusNotFound, "post not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to save comment")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thanks! Your comment is awaiting moderation.",
		"comment": gin.H{"id": comment.ID},
	})
}

// Subscribe adds a newsletter signup and sends the confirmation mail when a
// mailer is configured.
func (a *API) Subscribe(c *gin.Context) {
	var payload subscribePayload
	if !bindJSON(c, &payload, "invalid subscribe payload") {
		return
	}

	subscriber, err := a.subscribers.Subscribe(payload.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailInvalid):
			respondError(c, http.StatusBadRequest, "a valid email address is required")
		case errors.Is(err, service.ErrAlreadySubscribed):
			respondError(c, http.StatusConflict, "this address is already subscribed")
		default:
			respondError(c, http.StatusInternalServerError, "failed to subscribe")
		}
		return
	}

	if err := a.mail.Send(
		[]string{subscriber.Email},
		"Welcome to the Mutant Technologies newsletter",
		"You are on the list. Expect occasional notes on what we are building.",
	); err != nil && !errors.Is(err, mailer.ErrNotConfigured) {
		log.Printf("send subscribe confirmation to %s: %v", subscriber.Email, err)
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed."})
}

// ContactSubmit relays a contact form message to the site contact address.
func (a *API) ContactSubmit(c *gin.Context) {
	var payload contactPayload
	if !bindJSON(c, &payload, "invalid contact payload") {
		return
	}

	name := strings.TrimSpace(payload.Name)
	message := strings.TrimSpace(payload.Message)
	if name == "" || message == "" {
		respondError(c, http.StatusBadRequest, "name and message are required")
		return
	}

	recipient := a.siteSettings(c).ContactEmail
	body := fmt.Sprintf("From: %s <%s>\n\n%s", name, strings.TrimSpace(payload.Email), message)

	if err := a.mail.Send([]string{recipient}, "Contact form: "+name, body); err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			respondError(c, http.StatusServiceUnavailable, "contact form is temporarily unavailable")
			return
		}
		log.Printf("relay contact message from %s: %v", name, err)
		respondError(c, http.StatusInternalServerError, "failed to send message")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent. We will get back to you soon."})
}
