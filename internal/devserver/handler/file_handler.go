package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// FileHandler handles media uploads. The devserver does not persist the
// bytes; it returns a synthetic media URL and the ad type inferred from
// the file extension, which is all the client flow needs.
type FileHandler struct{}

func NewFileHandler() *FileHandler {
	return &FileHandler{}
}

type uploadResponse struct {
	AdType   int    `json:"adType"`
	MediaURL string `json:"mediaUrl"`
}

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".webm": {},
	".mov":  {},
}

func (h *FileHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart field 'file' is required")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	defer src.Close()

	adType := 0
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, isVideo := videoExtensions[ext]; isVideo {
		adType = 1
	}

	return ok(c, uploadResponse{
		AdType:   adType,
		MediaURL: "/media/" + uuid.NewString() + ext,
	})
}
