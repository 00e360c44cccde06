package router

import (
	"html/template"
	"path/filepath"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/mutantsite/internal/config"
	"github.com/mutantsite/internal/handler"
)

// New configures the gin engine and mounts all routes.
func New(cfg config.AppConfig, api *handler.API) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("mutantsite_session", store))

	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	})

	// Templates are optional so JSON-only deployments and handler tests can
	// run without the web assets present.
	if matches, err := filepath.Glob(cfg.TemplateGlob); err == nil && len(matches) > 0 {
		r.LoadHTMLGlob(cfg.TemplateGlob)
	}

	r.Static("/static", cfg.StaticDir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public site
	r.GET("/", api.ShowHome)
	r.GET("/about", api.ShowAbout)
	r.GET("/services", api.ShowServices)
	r.GET("/portfolio", api.ShowPortfolio)
	r.GET("/portfolio/:slug", api.ShowPortfolioProject)
	r.GET("/blog", api.ShowBlog)
	r.GET("/blog/:slug", api.ShowPost)

	// Visual-builder driven landing pages
	r.GET("/p/*path", api.ShowBuilderPage)

	// Public JSON endpoints
	public := r.Group("/api")
	{
		public.POST("/posts/:id/like", api.LikePost)
		public.POST("/posts/:id/comments", api.CreateComment)
		public.POST("/subscribe", api.Subscribe)
		public.POST("/contact", api.ContactSubmit)
	}

	// Admin panel
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)

			adminAPI := auth.Group("/api")
			{
				adminAPI.GET("/posts", api.GetPosts)
				adminAPI.GET("/posts/:id", api.GetPost)
				adminAPI.POST("/posts", api.CreatePost)
				adminAPI.PUT("/posts/:id", api.UpdatePost)
				adminAPI.DELETE("/posts/:id", api.DeletePost)

				adminAPI.GET("/portfolio", api.GetPortfolioProjects)
				adminAPI.POST("/portfolio", api.CreatePortfolioProject)
				adminAPI.PUT("/portfolio/:id", api.UpdatePortfolioProject)
				adminAPI.DELETE("/portfolio/:id", api.DeletePortfolioProject)

				adminAPI.GET("/services", api.GetServiceItems)
				adminAPI.POST("/services", api.CreateServiceItem)
				adminAPI.PUT("/services/:id", api.UpdateServiceItem)
				adminAPI.DELETE("/services/:id", api.DeleteServiceItem)

				adminAPI.GET("/testimonials", api.GetTestimonials)
				adminAPI.POST("/testimonials", api.CreateTestimonial)
				adminAPI.PUT("/testimonials/:id", api.UpdateTestimonial)
				adminAPI.DELETE("/testimonials/:id", api.DeleteTestimonial)

				adminAPI.GET("/ongoing", api.GetOngoingProjects)
				adminAPI.POST("/ongoing", api.CreateOngoingProject)
				adminAPI.PUT("/ongoing/:id", api.UpdateOngoingProject)
				adminAPI.DELETE("/ongoing/:id", api.DeleteOngoingProject)

				adminAPI.GET("/sections/pages", api.GetSectionPages)
				adminAPI.GET("/sections", api.GetSections)
				adminAPI.PUT("/sections", api.UpsertSection)
				adminAPI.DELETE("/sections/:id", api.DeleteSection)

				adminAPI.GET("/metadata", api.GetMetadataRecords)
				adminAPI.PUT("/metadata", api.UpsertMetadata)
				adminAPI.DELETE("/metadata", api.DeleteMetadata)

				adminAPI.GET("/settings", api.GetSettings)
				adminAPI.PUT("/settings", api.UpdateSettings)

				adminAPI.GET("/comments", api.GetPendingComments)
				adminAPI.POST("/comments/:id/approve", api.ApproveComment)
				adminAPI.DELETE("/comments/:id", api.DeleteComment)

				adminAPI.GET("/subscribers", api.GetSubscribers)
				adminAPI.DELETE("/subscribers/:id", api.DeleteSubscriber)

				adminAPI.POST("/upload", api.UploadImage)
				adminAPI.POST("/deploy", api.TriggerDeploy)
			}
		}
	}

	r.NoRoute(api.NotFound)

	return r
}
