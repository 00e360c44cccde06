package handler

import (
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/mutantsite/internal/builder"
)

// builderPageModel is the page model builder-driven routes are scoped to.
const builderPageModel = "page"

// isPreviewing reports whether the request is a builder preview: the preview
// query flag plus a logged-in admin session. Preview renders the builder
// shell even without published content so editors can see unpublished
// drafts; anonymous requests never get it.
func isPreviewing(c *gin.Context) bool {
	if !strings.EqualFold(c.Query("preview"), "true") {
		return false
	}
	return sessions.Default(c).Get("user_id") != nil
}

// ShowBuilderPage serves the routes whose content is authored in the visual
// builder. Content absence outside preview mode is terminal for these
// routes: unlike metadata, there is no static composition to fall back to.
func (a *API) ShowBuilderPage(c *gin.Context) {
	urlPath := c.Param("path")
	if urlPath == "" {
		urlPath = "/"
	}

	content, err := a.builder.FetchContent(c.Request.Context(), builderPageModel, urlPath)
	if err != nil {
		log.Printf("fetch builder content for %q: %v", urlPath, err)
	}

	previewing := isPreviewing(c)
	if !builder.ShouldRender(content, previewing) {
		a.NotFound(c)
		return
	}

	data := gin.H{
		"content":    content,
		"previewing": previewing,
		"urlPath":    urlPath,
	}
	if content != nil {
		// The render tree is trusted builder output; embed it verbatim.
		data["contentJSON"] = template.JS(content.Data)
	}

	a.renderHTML(c, http.StatusOK, "builder_page.html", data)
}
