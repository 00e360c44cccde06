package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutantsite/internal/service"
)

type metadataPayload struct {
	PageSlug      string `json:"pageSlug"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	CanonicalURL  string `json:"canonicalUrl"`
	OGTitle       string `json:"ogTitle"`
	OGDescription string `json:"ogDescription"`
	OGImage       string `json:"ogImage"`
	TwitterCard   string `json:"twitterCard"`
	TwitterImage  string `json:"twitterImage"`
	Robots        string `json:"robots"`
}

// GetMetadataRecords lists all metadata records.
func (a *API) GetMetadataRecords(c *gin.Context) {
	records, err := a.metadata.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load metadata")
		return
	}
	c.JSON(http.StatusOK, gin.H{"metadata": records})
}

// UpsertMetadata creates or replaces the metadata record of one page.
func (a *API) UpsertMetadata(c *gin.Context) {
	var payload metadataPayload
	if !bindJSON(c, &payload, "invalid metadata payload") {
		return
	}

	record, err := a.metadata.Upsert(service.MetadataInput{
		PageSlug:      payload.PageSlug,
		Title:         payload.Title,
		Description:   payload.Description,
		CanonicalURL:  payload.CanonicalURL,
		OGTitle:       payload.OGTitle,
		OGDescription: payload.OGDescription,
		OGImage:       payload.OGImage,
		TwitterCard:   payload.TwitterCard,
		TwitterImage:  payload.TwitterImage,
		Robots:        payload.Robots,
	})
	if err != nil {
		if errors.Is(err, service.ErrMetadataSlugMissing) {
			respondError(c, http.StatusBadRequest, "page slug is required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to save metadata")
		return
	}

	a.hooks.Revalidate(record.PageSlug)
	c.JSON(http.StatusOK, gin.H{"metadata": record})
}

// DeleteMetadata removes the metadata record of one page.
func (a *API) DeleteMetadata(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		respondError(c, http.StatusBadRequest, "slug query parameter is required")
		return
	}

	if err := a.metadata.Delete(slug); err != nil {
		if errors.Is(err, service.ErrMetadataNotFound) {
			respondError(c, http.StatusNotFound, "metadata not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete metadata")
		return
	}

	a.hooks.Revalidate(slug)
	c.JSON(http.StatusOK, gin.H{"message": "Metadata deleted."})
}
