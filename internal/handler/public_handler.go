package handler

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mutantsite/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

func renderMarkdown(markdown string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(markdown), &buf); err != nil {
		log.Printf("render markdown: %v", err)
		return template.HTML(template.HTMLEscapeString(markdown))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

// ShowHome renders the home page from its resolved sections plus the
// featured portfolio, service catalog, testimonial and ongoing project rows.
func (a *API) ShowHome(c *gin.Context) {
	sections := a.sections.Resolve("home")
	meta := a.metadata.Resolve("/", service.MetadataDefaults{
		Title:       "Mutant Technologies | Digital Agency",
		Description: "We design and build digital products that mutate brands into market leaders.",
	})

	items, err := a.items.ListAll()
	if err != nil {
		log.Printf("list services for home: %v", err)
	}
	featured, err := a.portfolio.ListFeatured(4)
	if err != nil {
		log.Printf("list featured portfolio for home: %v", err)
	}
	testimonials, err := a.testimonials.ListAll()
	if err != nil {
		log.Printf("list testimonials for home: %v", err)
	}
	ongoing, err := a.ongoing.ListAll()
	if err != nil {
		log.Printf("list ongoing projects for home: %v", err)
	}

	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"meta":         meta,
		"sections":     sections,
		"services":     items,
		"featured":     featured,
		"testimonials": testimonials,
		"ongoing":      ongoing,
	})
}

// ShowAbout renders the about page.
func (a *API) ShowAbout(c *gin.Context) {
	sections := a.sections.Resolve("about")
	meta := a.metadata.Resolve("/about", service.MetadataDefaults{
		Title:       "About Us | Mutant Technologies",
		Description: "Who we are, how we work, and why clients stay.",
	})

	a.renderHTML(c, http.StatusOK, "about.html", gin.H{
		"meta":     meta,
		"sections": sections,
	})
}

// ShowServices renders the service catalog page.
func (a *API) ShowServices(c *gin.Context) {
	sections := a.sections.Resolve("services")
	meta := a.metadata.Resolve("/services", service.MetadataDefaults{
		Title:       "Services | Mutant Technologies",
		Description: "Strategy, design, engineering and growth services for digital products.",
	})

	items, err := a.items.ListAll()
	if err != nil {
		log.Printf("list services: %v", err)
	}

	a.renderHTML(c, http.StatusOK, "services.html", gin.H{
		"meta":     meta,
		"sections": sections,
		"services": items,
	})
}

// ShowPortfolio renders the portfolio index.
func (a *API) ShowPortfolio(c *gin.Context) {
	sections := a.sections.Resolve("portfolio")
	meta := a.metadata.Resolve("/portfolio", service.MetadataDefaults{
		Title:       "Portfolio | Mutant Technologies",
		Description: "Selected client work across web, mobile and brand.",
	})

	projects, err := a.portfolio.ListPublic()
	if err != nil {
		log.Printf("list portfolio: %v", err)
	}

	a.renderHTML(c, http.StatusOK, "portfolio.html", gin.H{
		"meta":     meta,
		"sections": sections,
		"projects": projects,
	})
}

// ShowPortfolioProject renders one portfolio case study.
func (a *API) ShowPortfolioProject(c *gin.Context) {
	projectSlug := c.Param("slug")

	project, err := a.portfolio.GetBySlug(projectSlug)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			a.NotFound(c)
			return
		}
		a.renderHTML(c, http.StatusInternalServerError, "error.html", gin.H{
			"message": "Something went wrong loading this project.",
		})
		return
	}

	meta := a.metadata.Resolve("/portfolio/"+project.Slug, service.MetadataDefaults{
		Title:       project.Title,
		Description: project.Summary,
		OGImages:    imageDefaults(project.CoverURL),
	})

	a.renderHTML(c, http.StatusOK, "portfolio_detail.html", gin.H{
		"meta":    meta,
		"project": project,
		"tags":    service.SplitTags(project.Tags),
		"body":    renderMarkdown(project.Body),
	})
}

// ShowBlog renders the blog index with search and pagination.
func (a *API) ShowBlog(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)

	sections := a.sections.Resolve("blog")
	meta := a.metadata.Resolve("/blog", service.MetadataDefaults{
		Title:       "Blog | Mutant Technologies",
		Description: "Notes on design, engineering and running a digital agency.",
	})

	result, err := a.posts.List(service.PostFilter{
		Search:  search,
		Status:  "published",
		Page:    page,
		PerPage: 6,
	})
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "blog.html", gin.H{
			"meta":     meta,
			"sections": sections,
			"error":    "Failed to load posts.",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "blog.html", gin.H{
		"meta":       meta,
		"sections":   sections,
		"search":     search,
		"posts":      result.Posts,
		"page":       result.Page,
		"totalPages": result.TotalPages,
		"hasMore":    result.Page < result.TotalPages,
	})
}

// ShowPost renders one blog post with its approved comments and like count.
func (a *API) ShowPost(c *gin.Context) {
	postSlug := c.Param("slug")

	post, err := a.posts.GetPublishedBySlug(postSlug)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			a.NotFound(c)
			return
		}
		a.renderHTML(c, http.StatusInternalServerError, "error.html", gin.H{
			"message": "Something went wrong loading this post.",
		})
		return
	}

	meta := a.metadata.Resolve("/blog/"+post.Slug, service.MetadataDefaults{
		Title:       post.Title,
		Description: post.Summary,
		OGImages:    imageDefaults(post.CoverURL),
	})

	comments, err := a.comments.ListApproved(post.ID)
	if err != nil {
		log.Printf("list comments for post %d: %v", post.ID, err)
	}
	likes, err := a.likes.Count(post.ID)
	if err != nil {
		log.Printf("count likes for post %d: %v", post.ID, err)
	}

	a.renderHTML(c, http.StatusOK, "post.html", gin.H{
		"meta":     meta,
		"post":     post,
		"content":  renderMarkdown(post.Content),
		"comments": comments,
		"likes":    likes,
	})
}

// NotFound renders the public not-found page.
func (a *API) NotFound(c *gin.Context) {
	a.renderHTML(c, http.StatusNotFound, "not_found.html", gin.H{
		"meta": a.metadata.Resolve(c.Request.URL.Path, service.MetadataDefaults{
			Title:       "Page not found | Mutant Technologies",
			Description: "The page you were looking for has mutated away.",
		}),
	})
}

func imageDefaults(coverURL string) []string {
	if strings.TrimSpace(coverURL) == "" {
		return nil
	}
	return []string{coverURL}
}
