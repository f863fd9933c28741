package http

import "github.com/gin-gonic/gin"

// Register registers the architecture API routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/architectures", h.CreateArchitecture)
	rg.GET("/architectures/:id", h.GetArchitecture)
	rg.DELETE("/architectures/:id", h.DeleteArchitecture)
	rg.GET("/architectures/:id/document", h.GetDocument)
	rg.GET("/architectures/:id/document/html", h.GetDocumentHTML)
	rg.GET("/architectures/:id/diagram", h.GetDiagram)
	rg.GET("/architectures/:id/diagram/svg", h.GetDiagramSVG)
	rg.GET("/architectures/:id/diagram/view", h.GetDiagramView)
	rg.GET("/architectures/:id/diagram/last", h.GetLastDiagram)

	rg.POST("/compose/document", h.ComposeDocument)
	rg.POST("/compose/diagram", h.ComposeDiagram)
	rg.POST("/render", h.RenderDefinition)

	rg.GET("/archive", h.ListArchive)
	rg.GET("/metrics", h.Metrics)
}

// RegisterPages registers the browser form and result pages. The engine
// must have Templates() installed.
func (h *Handler) RegisterPages(r gin.IRouter) {
	r.GET("/", h.FormPage)
	r.POST("/architectures", h.SubmitForm)
	r.GET("/architectures/:id", h.ResultPage)
}
