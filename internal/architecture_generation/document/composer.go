// Package document turns a requirements record into the Markdown
// architecture document.
package document

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/domain"
)

var tmpl = template.Must(template.New("architecture").Parse(documentTemplate))

type view struct {
	SystemName         string
	Purpose            string
	TargetUsers        string
	Features           string
	PerformanceSummary string

	Frontend       string
	Backend        string
	Database       string
	Infrastructure string

	StackFrontend       string
	StackBackend        string
	StackDatabase       string
	StackInfrastructure string

	Security          string
	Integrations      string
	Performance       string
	Constraints       string
	AdditionalContext string
}

// Compose renders the architecture document for r. Values are inserted
// verbatim; the output depends only on r.
func Compose(r domain.Requirements) string {
	v := view{
		SystemName:         r.SystemName,
		Purpose:            r.Purpose,
		TargetUsers:        r.TargetUsers,
		Features:           bullets(r.MainFeatures, "- "),
		PerformanceSummary: strings.Join(r.PerformanceRequirements, ", "),

		Frontend:       or(r.Frontend, FallbackFrontend),
		Backend:        or(r.Backend, FallbackBackend),
		Database:       or(r.Database, FallbackDatabase),
		Infrastructure: or(r.Infrastructure, FallbackInfrastructure),

		StackFrontend:       or(r.Frontend, FallbackStackEntry),
		StackBackend:        or(r.Backend, FallbackStackEntry),
		StackDatabase:       or(r.Database, FallbackStackEntry),
		StackInfrastructure: or(r.Infrastructure, FallbackStackEntry),

		Security:          bulletsOr(r.SecurityRequirements, "- ", defaultSecurity),
		Integrations:      bulletsOr(r.Integrations, "- ", defaultIntegrations),
		Performance:       bulletsOr(r.PerformanceRequirements, "- Target: ", defaultPerformance),
		Constraints:       bulletsOr(r.TechnicalConstraints, "- ", defaultConstraints),
		AdditionalContext: or(r.AdditionalContext, FallbackAdditionalContext),
	}

	var b strings.Builder
	// text/template does not escape and the view only holds strings, so
	// Execute can only fail if the template itself is broken.
	if err := tmpl.Execute(&b, v); err != nil {
		panic(fmt.Sprintf("document: execute template: %v", err))
	}
	return b.String()
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func bullets(items []string, prefix string) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = prefix + it
	}
	return strings.Join(lines, "\n")
}

func bulletsOr(items []string, prefix, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return bullets(items, prefix)
}
