package handler

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/mutantsite/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// ShowLoginPage renders the admin login form.
func (a *API) ShowLoginPage(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "login.html", gin.H{
		"title": "Sign in",
	})
}

// Login authenticates an admin and starts a session.
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var user db.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"title": "Sign in",
			"error": "Invalid username or password",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"title": "Sign in",
			"error": "Invalid username or password",
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "login.html", gin.H{
			"title": "Sign in",
			"error": "Failed to save session",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout clears the admin session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Printf("clear admin session: %v", err)
	}
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowDashboard renders the admin overview with content counters.
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get("username")

	var postCount, projectCount, testimonialCount int64
	a.db.Model(&db.Post{}).Count(&postCount)
	a.db.Model(&db.PortfolioProject{}).Count(&projectCount)
	a.db.Model(&db.Testimonial{}).Count(&testimonialCount)

	pendingComments, err := a.comments.CountPending()
	if err != nil {
		log.Printf("count pending comments: %v", err)
	}
	subscriberCount, err := a.subscribers.Count()
	if err != nil {
		log.Printf("count subscribers: %v", err)
	}

	a.renderHTML(c, http.StatusOK, "dashboard.html", gin.H{
		"title":            "Dashboard",
		"username":         username,
		"postCount":        postCount,
		"projectCount":     projectCount,
		"testimonialCount": testimonialCount,
		"pendingComments":  pendingComments,
		"subscriberCount":  subscriberCount,
	})
}

// TriggerDeploy fires the deploy webhook from the admin panel.
func (a *API) TriggerDeploy(c *gin.Context) {
	a.hooks.Deploy()
	c.JSON(http.StatusAccepted, gin.H{"message": "Deploy triggered."})
}

// AuthRequired guards the admin routes behind the session.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")
		if userID == nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
