package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutantsite/internal/service"
)

type portfolioPayload struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Summary     string   `json:"summary"`
	Body        string   `json:"body"`
	CoverURL    string   `json:"coverUrl"`
	Tags        []string `json:"tags"`
	ExternalURL string   `json:"externalUrl"`
	Featured    bool     `json:"featured"`
	SortOrder   int      `json:"sortOrder"`
}

// GetPortfolioProjects lists all projects for the admin screen.
func (a *API) GetPortfolioProjects(c *gin.Context) {
	projects, err := a.portfolio.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load projects")
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// CreatePortfolioProject persists a new project.
func (a *API) CreatePortfolioProject(c *gin.Context) {
	var payload portfolioPayload
	if !bindJSON(c, &payload, "invalid project payload") {
		return
	}

	project, err := a.portfolio.Create(portfolioInput(payload))
	if err != nil {
		respondPortfolioError(c, err)
		return
	}

	a.hooks.Revalidate("/portfolio", "/portfolio/"+project.Slug)
	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// UpdatePortfolioProject applies updates to an existing project.
func (a *API) UpdatePortfolioProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	var payload portfolioPayload
	if !bindJSON(c, &payload, "invalid project payload") {
		return
	}

	project, err := a.portfolio.Update(id, portfolioInput(payload))
	if err != nil {
		respondPortfolioError(c, err)
		return
	}

	a.hooks.Revalidate("/portfolio", "/portfolio/"+project.Slug)
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// DeletePortfolioProject removes a project.
func (a *API) DeletePortfolioProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := a.portfolio.Delete(id); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "project not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete project")
		return
	}

	a.hooks.Revalidate("/portfolio")
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted."})
}

func portfolioInput(payload portfolioPayload) service.PortfolioInput {
	return service.PortfolioInput{
		Title:       payload.Title,
		Slug:        payload.Slug,
		Summary:     payload.Summary,
		Body:        payload.Body,
		CoverURL:    payload.CoverURL,
		Tags:        payload.Tags,
		ExternalURL: payload.ExternalURL,
		Featured:    payload.Featured,
		SortOrder:   payload.SortOrder,
	}
}

func respondPortfolioError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		respondError(c, http.StatusNotFound, "project not found")
	case errors.Is(err, service.ErrProjectTitleMissing):
		respondError(c, http.StatusBadRequest, "title is required")
	case errors.Is(err, service.ErrProjectSlugTaken):
		respondError(c, http.StatusConflict, "slug is already in use")
	default:
		respondError(c, http.StatusInternalServerError, "failed to save project")
	}
}
