package convert

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"docmark/internal/intake"
	"docmark/internal/ocr"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  *Service
	maxBytes int64
}

func NewHandler(service *Service, maxBytes int64) *Handler {
	return &Handler{service: service, maxBytes: maxBytes}
}

// --------------------------------------------------
// POST /convert — upload a document, get markdown back
// --------------------------------------------------
func (h *Handler) Convert(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+(1<<20))

	file, header, err := c.Request.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document file is required"})
		return
	}
	defer file.Close()

	uploaded, err := intake.FromMultipart(file, header.Filename, h.maxBytes)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, intake.ErrFileTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	conversion, err := h.service.Convert(c.Request.Context(), uploaded)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, conversion)
}

// --------------------------------------------------
// POST /download — stream raw markdown as a .md file
// --------------------------------------------------
func (h *Handler) Download(c *gin.Context) {
	var req struct {
		DownloadName string `json:"download_name"`
		Markdown     string `json:"markdown"`
	}

	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	name := filepath.Base(strings.TrimSpace(req.DownloadName))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "converted.md"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".md") {
		name += ".md"
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(req.Markdown))
}

// statusFor maps the conversion error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ocr.ErrMissingCredential):
		return http.StatusServiceUnavailable
	case errors.Is(err, ocr.ErrAuthentication):
		return http.StatusBadGateway
	case errors.Is(err, ocr.ErrNetwork):
		return http.StatusGatewayTimeout
	case errors.Is(err, ocr.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
