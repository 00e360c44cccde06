package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type settingsPayload struct {
	Settings map[string]string `json:"settings"`
}

// GetSettings lists all settings with their presentation metadata for the
// admin settings screen.
func (a *API) GetSettings(c *gin.Context) {
	settings, err := a.settings.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings upserts the submitted key/value pairs and revalidates the
// whole site; settings feed every page.
func (a *API) UpdateSettings(c *gin.Context) {
	var payload settingsPayload
	if !bindJSON(c, &payload, "invalid settings payload") {
		return
	}
	if len(payload.Settings) == 0 {
		respondError(c, http.StatusBadRequest, "no settings provided")
		return
	}

	for key, value := range payload.Settings {
		if err := a.settings.Update(key, value); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to save settings")
			return
		}
	}

	a.hooks.Revalidate("/", "/about", "/services", "/portfolio", "/blog")
	c.JSON(http.StatusOK, gin.H{"message": "Settings saved."})
}
