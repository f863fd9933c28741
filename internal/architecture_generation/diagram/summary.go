package diagram

import "github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/domain"

// Components is the per-layer technology summary shown next to the diagram.
type Components struct {
	Frontend       string `json:"frontend"`
	Backend        string `json:"backend"`
	Database       string `json:"database"`
	Infrastructure string `json:"infrastructure"`
}

func Summarize(r domain.Requirements) Components {
	return Components{
		Frontend:       or(r.Frontend, "Modern web framework"),
		Backend:        or(r.Backend, "Server-side framework"),
		Database:       or(r.Database, "Database system"),
		Infrastructure: or(r.Infrastructure, "Cloud infrastructure"),
	}
}

// Theme is the renderer configuration (mermaid-cli config file layout).
type Theme struct {
	Theme          string            `json:"theme"`
	ThemeVariables map[string]string `json:"themeVariables"`
	// SecurityLevel strict makes mermaid escape node labels, which carry
	// user text.
	SecurityLevel string `json:"securityLevel"`
}

func ThemeConfig() Theme {
	return Theme{
		Theme:         "default",
		SecurityLevel: "strict",
		ThemeVariables: map[string]string{
			"primaryColor":       "#3b82f6",
			"primaryTextColor":   "#1e293b",
			"primaryBorderColor": "#1e40af",
			"lineColor":          "#64748b",
			"secondaryColor":     "#f1f5f9",
			"tertiaryColor":      "#e2e8f0",
		},
	}
}
