package http

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/diagram"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/domain"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/export"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates returns the page templates for gin's SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(template.New("pages").Funcs(template.FuncMap{
		"lines": func(items []string) string { return strings.Join(items, "\n") },
	}).ParseFS(templateFS, "templates/*.tmpl"))
}

type formPage struct {
	Form  domain.Requirements
	Error string
}

type resultPage struct {
	Architecture     *domain.Architecture
	Document         string
	Definition       string
	Components       diagram.Components
	Diagram          template.HTML
	Rendered         bool
	DocumentFilename string
	DiagramFilename  string
}

// FormPage serves the empty requirements form.
func (h *Handler) FormPage(c *gin.Context) {
	c.HTML(http.StatusOK, "form.tmpl", formPage{})
}

// SubmitForm turns a posted form into a session and redirects to its result page.
func (h *Handler) SubmitForm(c *gin.Context) {
	req := requirementsFromForm(c)

	a, err := h.svc.Submit(c.Request.Context(), req)
	switch {
	case errors.Is(err, domain.ErrSystemNameRequired), errors.Is(err, domain.ErrPurposeRequired):
		c.HTML(http.StatusBadRequest, "form.tmpl", formPage{Form: req, Error: err.Error()})
		return
	case err != nil:
		c.HTML(http.StatusInternalServerError, "form.tmpl", formPage{Form: req, Error: "failed to create architecture"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/architectures/"+a.ID)
}

// ResultPage shows the document and the rendered diagram side by side.
func (h *Handler) ResultPage(c *gin.Context) {
	ctx := c.Request.Context()

	a, res, err := h.svc.RenderDiagram(ctx, c.Param("id"))
	if errors.Is(err, domain.ErrArchitectureNotFound) {
		c.String(http.StatusNotFound, "architecture not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load architecture")
		return
	}

	d := h.svc.ComposeDiagram(a.Requirements)
	// Node labels are user text. The SVG is trusted only because the renderer
	// runs with securityLevel strict (diagram.ThemeConfig), which escapes them.
	svg := template.HTML(res.Display())
	c.HTML(http.StatusOK, "result.tmpl", resultPage{
		Architecture:     a,
		Document:         h.svc.ComposeDocument(a.Requirements),
		Definition:       d.Definition,
		Components:       d.Components,
		Diagram:          svg,
		Rendered:         res.Rendered,
		DocumentFilename: export.DocumentFilename(a.Requirements.SystemName),
		DiagramFilename:  export.DiagramFilename(a.Requirements.SystemName),
	})
}

// requirementsFromForm reads scalar fields as-is and list fields one entry per line.
func requirementsFromForm(c *gin.Context) domain.Requirements {
	return domain.Requirements{
		SystemName:              c.PostForm("systemName"),
		Purpose:                 c.PostForm("purpose"),
		TargetUsers:             c.PostForm("targetUsers"),
		MainFeatures:            formList(c, "mainFeatures"),
		PerformanceRequirements: formList(c, "performanceRequirements"),
		Frontend:                c.PostForm("frontend"),
		Backend:                 c.PostForm("backend"),
		Database:                c.PostForm("database"),
		Infrastructure:          c.PostForm("infrastructure"),
		TechnicalConstraints:    formList(c, "technicalConstraints"),
		Preferences:             formList(c, "preferences"),
		SecurityRequirements:    formList(c, "securityRequirements"),
		Integrations:            formList(c, "integrations"),
		AdditionalContext:       c.PostForm("additionalContext"),
	}
}

// formList accepts both repeated fields and newline separated textareas.
func formList(c *gin.Context, key string) []string {
	var out []string
	for _, v := range c.PostFormArray(key) {
		for _, line := range strings.Split(v, "\n") {
			out = append(out, strings.TrimRight(line, "\r"))
		}
	}
	return out
}
