package handler

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const thumbnailWidth = 480

// UploadImage stores an uploaded image under a unique name and writes a
// scaled thumbnail variant next to it. The response carries both URLs.
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "no image found in request")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "only image uploads are allowed")
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create upload directory")
		return
	}

	ext := filepath.Ext(file.Filename)
	baseName := fmt.Sprintf("%s-%s", time.Now().Format("20060102"), uuid.New().String())
	filePath := filepath.Join(a.uploadDir, baseName+ext)

	if err := c.SaveUploadedFile(file, filePath); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save file")
		return
	}

	fileURL := a.uploadURL + "/" + baseName + ext
	response := gin.H{"url": fileURL}

	if thumbName, err := a.writeThumbnail(filePath, baseName); err != nil {
		// Thumbnails are best effort; animated or exotic formats keep
		// only the original.
		log.Printf("thumbnail for %s: %v", filePath, err)
	} else {
		response["thumbnailUrl"] = a.uploadURL + "/" + thumbName
	}

	c.JSON(http.StatusOK, response)
}

func (a *API) writeThumbnail(filePath, baseName string) (string, error) {
	source, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer source.Close()

	decoded, _, err := image.Decode(source)
	if err != nil {
		return "", err
	}

	bounds := decoded.Bounds()
	if bounds.Dx() <= thumbnailWidth {
		return "", fmt.Errorf("image narrower than %dpx", thumbnailWidth)
	}

	height := bounds.Dy() * thumbnailWidth / bounds.Dx()
	thumb := image.NewRGBA(image.Rect(0, 0, thumbnailWidth, height))
	draw.CatmullRom.Scale(thumb, thumb.Bounds(), decoded, bounds, draw.Over, nil)

	thumbName := baseName + "-thumb.jpg"
	out, err := os.Create(filepath.Join(a.uploadDir, thumbName))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := jpeg.Encode(out, thumb, &jpeg.Options{Quality: 85}); err != nil {
		return "", err
	}
	return thumbName, nil
}
