package service

import (
	"context"
	"time"

	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/diagram"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/diagram/render"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/document"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/domain"
)

// SessionStore holds submitted architectures for the session lifetime.
type SessionStore interface {
	Create(ctx context.Context, a *domain.Architecture) error
	Get(ctx context.Context, id string) (*domain.Architecture, error)
	Delete(ctx context.Context, id string) error
	SetDiagramSVG(ctx context.Context, id string, svg []byte) error
	GetDiagramSVG(ctx context.Context, id string) ([]byte, error)
}

// Archive is the optional long-term record of generated architectures.
type Archive interface {
	Save(ctx context.Context, e *domain.ArchiveEntry) error
	ListRecent(ctx context.Context, limit int) ([]domain.ArchiveEntry, error)
}

// DiagramResult is the composed diagram definition plus the layer summary.
type DiagramResult struct {
	Definition string            `json:"definition"`
	Components diagram.Components `json:"components"`
}

// RenderResult is what a display surface shows for a diagram.
type RenderResult struct {
	SVG []byte
	// Rendered is false when the renderer failed and SVG is nil.
	Rendered bool
	Err      error
}

// Display returns the SVG, or the error placeholder when rendering failed.
func (r RenderResult) Display() string {
	if !r.Rendered {
		return render.ErrorPlaceholder
	}
	return string(r.SVG)
}

// ArchitectureService composes documents and diagrams for submitted records
type ArchitectureService struct {
	sessions SessionStore
	archive  Archive
	renderer render.Renderer
}

// NewArchitectureService wires the service; archive may be nil.
func NewArchitectureService(sessions SessionStore, renderer render.Renderer, archive Archive) *ArchitectureService {
	return &ArchitectureService{
		sessions: sessions,
		archive:  archive,
		renderer: renderer,
	}
}

// Submit cleans and validates req and opens a new session for it.
func (s *ArchitectureService) Submit(ctx context.Context, req domain.Requirements) (*domain.Architecture, error) {
	logger := NewLogger(ctx)

	cleaned := req.Clean()
	if err := cleaned.Validate(); err != nil {
		return nil, err
	}

	a := &domain.Architecture{Requirements: cleaned, CreatedAt: time.Now().UTC()}
	if err := s.sessions.Create(ctx, a); err != nil {
		logger.LogErrorf("submit", "system_name=%q error=%v", cleaned.SystemName, err)
		return nil, err
	}
	recordSubmission()
	logger.LogInfof("submit", "architecture_id=%s system_name=%q", a.ID, cleaned.SystemName)

	if s.archive != nil {
		entry := &domain.ArchiveEntry{
			ID:           a.ID,
			SystemName:   cleaned.SystemName,
			Requirements: cleaned,
			Document:     document.Compose(cleaned),
			Diagram:      diagram.Compose(cleaned),
			CreatedAt:    a.CreatedAt,
		}
		// The session is already usable; a failed archive write is only logged.
		if err := s.archive.Save(ctx, entry); err != nil {
			logger.LogError("archive_save", err)
		}
	}

	return a, nil
}

func (s *ArchitectureService) Get(ctx context.Context, id string) (*domain.Architecture, error) {
	return s.sessions.Get(ctx, id)
}

func (s *ArchitectureService) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

// Document returns the Markdown document of a stored architecture.
func (s *ArchitectureService) Document(ctx context.Context, id string) (*domain.Architecture, string, error) {
	a, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return a, s.ComposeDocument(a.Requirements), nil
}

// Diagram returns the diagram definition of a stored architecture.
func (s *ArchitectureService) Diagram(ctx context.Context, id string) (*domain.Architecture, DiagramResult, error) {
	a, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, DiagramResult{}, err
	}
	return a, s.ComposeDiagram(a.Requirements), nil
}

// RenderDiagram renders the stored architecture's diagram. Renderer failures
// are logged and reported through RenderResult, not as an error; the error
// return is for lookup failures only.
func (s *ArchitectureService) RenderDiagram(ctx context.Context, id string) (*domain.Architecture, RenderResult, error) {
	logger := NewLogger(ctx)

	a, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, RenderResult{}, err
	}

	res := s.Render(ctx, s.ComposeDiagram(a.Requirements).Definition)
	if !res.Rendered {
		return a, res, nil
	}

	if err := s.sessions.SetDiagramSVG(ctx, a.ID, res.SVG); err != nil {
		logger.LogWarnf("render_diagram", "architecture_id=%s store svg: %v", a.ID, err)
	}
	return a, res, nil
}

// LastDiagram returns the most recently rendered SVG for a session, if any.
func (s *ArchitectureService) LastDiagram(ctx context.Context, id string) ([]byte, error) {
	if _, err := s.sessions.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.sessions.GetDiagramSVG(ctx, id)
}

// Render runs the external renderer on a definition.
func (s *ArchitectureService) Render(ctx context.Context, definition string) RenderResult {
	logger := NewLogger(ctx)

	start := time.Now()
	svg, err := s.renderer.Render(ctx, definition)
	recordRender(time.Since(start), err)
	if err != nil {
		logger.LogError("render_diagram", err)
		return RenderResult{Err: err}
	}
	return RenderResult{SVG: svg, Rendered: true}
}

// ComposeDocument is the stateless document composer.
func (s *ArchitectureService) ComposeDocument(r domain.Requirements) string {
	recordDocument()
	return document.Compose(r)
}

// ComposeDiagram is the stateless diagram composer.
func (s *ArchitectureService) ComposeDiagram(r domain.Requirements) DiagramResult {
	recordDiagram()
	return DiagramResult{
		Definition: diagram.Compose(r),
		Components: diagram.Summarize(r),
	}
}

func (s *ArchitectureService) ArchiveEnabled() bool {
	return s.archive != nil
}

func (s *ArchitectureService) ListArchive(ctx context.Context, limit int) ([]domain.ArchiveEntry, error) {
	if s.archive == nil {
		return nil, domain.ErrArchiveDisabled
	}
	return s.archive.ListRecent(ctx, limit)
}
