package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutantsite/internal/service"
)

// Admin CRUD for the three small home page collections: service items,
// testimonials and ongoing projects.

type serviceItemPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl"`
	SortOrder   int    `json:"sortOrder"`
}

type testimonialPayload struct {
	Author    string `json:"author"`
	Role      string `json:"role"`
	Company   string `json:"company"`
	Quote     string `json:"quote"`
	AvatarURL string `json:"avatarUrl"`
	Rating    int    `json:"rating"`
	SortOrder int    `json:"sortOrder"`
}

type ongoingProjectPayload struct {
	Title       string `json:"title"`
	StatusLabel string `json:"statusLabel"`
	Note        string `json:"note"`
	LinkURL     string `json:"linkUrl"`
	SortOrder   int    `json:"sortOrder"`
}

func (a *API) GetServiceItems(c *gin.Context) {
	items, err := a.items.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load services")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": items})
}

func (a *API) CreateServiceItem(c *gin.Context) {
	var payload serviceItemPayload
	if !bindJSON(c, &payload, "invalid service payload") {
		return
	}

	item, err := a.items.Create(service.ServiceItemInput{
		Title:       payload.Title,
		Description: payload.Description,
		IconURL:     payload.IconURL,
		SortOrder:   payload.SortOrder,
	})
	if err != nil {
		if errors.Is(err, service.ErrServiceItemTitleMissing) {
			respondError(c, http.StatusBadRequest, "title is required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to save service")
		return
	}

	a.hooks.Revalidate("/", "/services")
	c.JSON(http.StatusCreated, gin.H{"service": item})
}

func (a *API) UpdateServiceItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid service id")
		return
	}

	var payload serviceItemPayload
	if !bindJSON(c, &payload, "invalid service payload") {
		return
	}

	item, err := a.items.Update(id, service.ServiceItemInput{
		Title:       payload.Title,
		Description: payload.Description,
		IconURL:     payload.IconURL,
		SortOrder:   payload.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServiceItemNotFound):
			respondError(c, http.StatusNotFound, "service not found")
		case errors.Is(err, service.ErrServiceItemTitleMissing):
			respondError(c, http.StatusBadRequest, "title is required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to save service")
		}
		return
	}

	a.hooks.Revalidate("/", "/services")
	c.JSON(http.StatusOK, gin.H{"service": item})
}

func (a *API) DeleteServiceItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid service id")
		return
	}

	if err := a.items.Delete(id); err != nil {
		if errors.Is(err, service.ErrServiceItemNotFound) {
			respondError(c, http.StatusNotFound, "service not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete service")
		return
	}

	a.hooks.Revalidate("/", "/services")
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted."})
}

func (a *API) GetTestimonials(c *gin.Context) {
	testimonials, err := a.testimonials.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load testimonials")
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

func (a *API) CreateTestimonial(c *gin.Context) {
	var payload testimonialPayload
	if !bindJSON(c, &payload, "invalid testimonial payload") {
		return
	}

	testimonial, err := a.testimonials.Create(testimonialInput(payload))
	if err != nil {
		respondTestimonialError(c, err)
		return
	}

	a.hooks.Revalidate("/")
	c.JSON(http.StatusCreated, gin.H{"testimonial": testimonial})
}

func (a *API) UpdateTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid testimonial id")
		return
	}

	var payload testimonialPayload
	if !bindJSON(c, &payload, "invalid testimonial payload") {
		return
	}

	testimonial, err := a.testimonials.Update(id, testimonialInput(payload))
	if err != nil {
		respondTestimonialError(c, err)
		return
	}

	a.hooks.Revalidate("/")
	c.JSON(http.StatusOK, gin.H{"testimonial": testimonial})
}

func (a *API) DeleteTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid testimonial id")
		return
	}

	if err := a.testimonials.Delete(id); err != nil {
		if errors.Is(err, service.ErrTestimonialNotFound) {
			respondError(c, http.StatusNotFound, "testimonial not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete testimonial")
		return
	}

	a.hooks.Revalidate("/")
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted."})
}

func (a *API) GetOngoingProjects(c *gin.Context) {
	projects, err := a.ongoing.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load ongoing projects")
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (a *API) CreateOngoingProject(c *gin.Context) {
	var payload ongoingProjectPayload
	if !bindJSON(c, &payload, "invalid project payload") {
		return
	}

	project, err := a.ongoing.Create(ongoingProjectInput(payload))
	if err != nil {
		if errors.Is(err, service.ErrOngoingProjectTitleMissing) {
			respondError(c, http.StatusBadRequest, "title is required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to save project")
		return
	}

	a.hooks.Revalidate("/")
	c.JSON(http.StatusCreated, gin.H{"project": project})
}

func (a *API) UpdateOngoingProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	var payload ongoingProjectPayload
	if !bindJSON(c, &payload, "invalid project payload") {
		return
	}

	project, err := a.ongoing.Update(id, ongoingProjectInput(payload))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOngoingProjectNotFound):
			respondError(c, http.StatusNotFound, "project not found")
		case errors.Is(err, service.ErrOngoingProjectTitleMissing):
			respondError(c, http.StatusBadRequest, "title is required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to save project")
		}
		return
	}

	a.hooks.Revalidate("/")
	c.JSON(http.StatusOK, gin.H{"project": project})
}

func (a *API) DeleteOngoingProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := a.ongoing.Delete(id); err != nil {
		if errors.Is(err, service.ErrOngoingProjectNotFound) {
			respondError(c, http.StatusNotFound, "project not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete project")
		return
	}

	a.hooks.Revalidate("/")
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted."})
}

func testimonialInput(payload testimonialPayload) service.TestimonialInput {
	return service.TestimonialInput{
		Author:    payload.Author,
		Role:      payload.Role,
		Company:   payload.Company,
		Quote:     payload.Quote,
		AvatarURL: payload.AvatarURL,
		Rating:    payload.Rating,
		SortOrder: payload.SortOrder,
	}
}

func ongoingProjectInput(payload ongoingProjectPayload) service.OngoingProjectInput {
	return service.OngoingProjectInput{
		Title:       payload.Title,
		StatusLabel: payload.StatusLabel,
		Note:        payload.Note,
		LinkURL:     payload.LinkURL,
		SortOrder:   payload.SortOrder,
	}
}

func respondTestimonialError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTestimonialNotFound):
		respondError(c, http.StatusNotFound, "testimonial not found")
	case errors.Is(err, service.ErrTestimonialAuthorMissing):
		respondError(c, http.StatusBadRequest, "author is required")
	case errors.Is(err, service.ErrTestimonialQuoteMissing):
		respondError(c, http.StatusBadRequest, "quote is required")
	case errors.Is(err, service.ErrTestimonialRatingInvalid):
		respondError(c, http.StatusBadRequest, "rating must be between 1 and 5")
	default:
		respondError(c, http.StatusInternalServerError, "failed to save testimonial")
	}
}
