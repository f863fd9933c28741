package http

import (
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/domain"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/service"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for architecture generation
type Handler struct {
	svc *service.ArchitectureService
}

// New creates a new Handler
func New(svc *service.ArchitectureService) *Handler {
	return &Handler{svc: svc}
}

type architectureResponse struct {
	Architecture *domain.Architecture `json:"architecture"`
}

type diagramResponse struct {
	ID string `json:"id"`
	service.DiagramResult
}

// writeError maps service errors onto JSON error responses.
func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrArchitectureNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "architecture not found"})
	case errors.Is(err, domain.ErrSystemNameRequired), errors.Is(err, domain.ErrPurposeRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrArchiveDisabled):
		c.JSON(http.StatusNotFound, gin.H{"error": "archive disabled"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func wantsDownload(c *gin.Context) bool {
	v, err := strconv.ParseBool(c.Query("download"))
	return err == nil && v
}

func setAttachment(c *gin.Context, filename string) {
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": filename})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", disposition)
}
