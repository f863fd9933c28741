package http

import (
	"net/http"
	"strconv"

	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/diagram/render"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/document"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/domain"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/export"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/service"
	"github.com/gin-gonic/gin"
)

// CreateArchitecture submits a requirements record and opens a session
func (h *Handler) CreateArchitecture(c *gin.Context) {
	var req domain.Requirements
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	a, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "failed to create architecture")
		return
	}

	c.JSON(http.StatusCreated, architectureResponse{Architecture: a})
}

func (h *Handler) GetArchitecture(c *gin.Context) {
	a, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to get architecture")
		return
	}
	c.JSON(http.StatusOK, architectureResponse{Architecture: a})
}

func (h *Handler) DeleteArchitecture(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "failed to delete architecture")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "architecture deleted successfully"})
}

// GetDocument returns the Markdown document, as an attachment with ?download=true
func (h *Handler) GetDocument(c *gin.Context) {
	a, doc, err := h.svc.Document(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to compose document")
		return
	}
	if wantsDownload(c) {
		setAttachment(c, export.DocumentFilename(a.Requirements.SystemName))
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(doc))
}

func (h *Handler) GetDocumentHTML(c *gin.Context) {
	_, doc, err := h.svc.Document(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to compose document")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", document.RenderHTML(doc))
}

func (h *Handler) GetDiagram(c *gin.Context) {
	a, d, err := h.svc.Diagram(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to compose diagram")
		return
	}
	c.JSON(http.StatusOK, diagramResponse{ID: a.ID, DiagramResult: d})
}

// GetDiagramSVG renders the diagram; renderer failures answer 502
func (h *Handler) GetDiagramSVG(c *gin.Context) {
	a, res, err := h.svc.RenderDiagram(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to render diagram")
		return
	}
	if !res.Rendered {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error rendering diagram"})
		return
	}
	if wantsDownload(c) {
		setAttachment(c, export.DiagramFilename(a.Requirements.SystemName))
	}
	c.Data(http.StatusOK, "image/svg+xml", res.SVG)
}

// GetDiagramView returns the display fragment: the SVG or the error placeholder
func (h *Handler) GetDiagramView(c *gin.Context) {
	_, res, err := h.svc.RenderDiagram(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to render diagram")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(res.Display()))
}

// GetLastDiagram returns the last SVG rendered for the session without rendering
func (h *Handler) GetLastDiagram(c *gin.Context) {
	svg, err := h.svc.LastDiagram(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to get diagram")
		return
	}
	if svg == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "diagram not rendered yet"})
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", svg)
}

// ComposeDocument is the stateless document composer endpoint
func (h *Handler) ComposeDocument(c *gin.Context) {
	var req domain.Requirements
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(h.svc.ComposeDocument(req.Clean())))
}

func (h *Handler) ComposeDiagram(c *gin.Context) {
	var req domain.Requirements
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, h.svc.ComposeDiagram(req.Clean()))
}

// RenderDefinition renders a caller-supplied definition
func (h *Handler) RenderDefinition(c *gin.Context) {
	var body struct {
		Definition string `json:"definition" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "definition is required"})
		return
	}
	res := h.svc.Render(c.Request.Context(), body.Definition)
	if !res.Rendered {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error rendering diagram", "placeholder": render.ErrorPlaceholder})
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", res.SVG)
}

func (h *Handler) ListArchive(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	entries, err := h.svc.ListArchive(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err, "failed to list archive")
		return
	}
	c.JSON(http.StatusOK, gin.H{"architectures": entries})
}

func (h *Handler) Metrics(c *gin.Context) {
	m := service.GetMetrics()
	c.JSON(http.StatusOK, gin.H{
		"metrics":                m,
		"average_render_latency": m.AverageRenderLatency(),
		"render_error_rate_pct":  m.RenderErrorRate(),
	})
}
