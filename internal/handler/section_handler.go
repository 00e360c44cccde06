package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutantsite/internal/content"
	"github.com/mutantsite/internal/service"
)

type sectionPayload struct {
	PageSlug   string         `json:"pageSlug"`
	SectionKey string         `json:"sectionKey"`
	Content    content.Fields `json:"content"`
}

// GetSectionPages lists the page slugs that have sections.
func (a *API) GetSectionPages(c *gin.Context) {
	pages, err := a.sections.ListPages()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load pages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// GetSections lists the sections of one page for the admin editor.
func (a *API) GetSections(c *gin.Context) {
	pageSlug := c.Query("page")
	if pageSlug == "" {
		respondError(c, http.StatusBadRequest, "page query parameter is required")
		return
	}

	sections, err := a.sections.ListByPage(pageSlug)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load sections")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// UpsertSection creates or replaces one section and revalidates its page.
func (a *API) UpsertSection(c *gin.Context) {
	var payload sectionPayload
	if !bindJSON(c, &payload, "invalid section payload") {
		return
	}

	section, err := a.sections.Upsert(service.SectionInput{
		PageSlug:   payload.PageSlug,
		SectionKey: payload.SectionKey,
		Content:    payload.Content,
	})
	if err != nil {
		if errors.Is(err, service.ErrSectionKeyMissing) {
			respondError(c, http.StatusBadRequest, "page slug and section key are required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to save section")
		return
	}

	a.hooks.Revalidate(pagePath(section.PageSlug))
	c.JSON(http.StatusOK, gin.H{"section": section})
}

// DeleteSection removes one section.
func (a *API) DeleteSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid section id")
		return
	}

	if err := a.sections.Delete(id); err != nil {
		if errors.Is(err, service.ErrSectionNotFound) {
			respondError(c, http.StatusNotFound, "section not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete section")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section deleted."})
}

// pagePath maps a page slug onto its public route.
func pagePath(pageSlug string) string {
	if pageSlug == "home" || pageSlug == "" {
		return "/"
	}
	return "/" + pageSlug
}
