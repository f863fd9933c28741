package domain

import (
	"strings"
	"time"
)

// Requirements is the flat record captured by the requirements form.
type Requirements struct {
	// Basic information
	SystemName   string   `json:"systemName" yaml:"systemName"`
	Purpose      string   `json:"purpose" yaml:"purpose"`
	MainFeatures []string `json:"mainFeatures" yaml:"mainFeatures"`

	// Technical constraints
	TechnicalConstraints []string `json:"technicalConstraints" yaml:"technicalConstraints"`
	Preferences          []string `json:"preferences" yaml:"preferences"`

	// Scale and performance
	TargetUsers             string   `json:"targetUsers" yaml:"targetUsers"`
	PerformanceRequirements []string `json:"performanceRequirements" yaml:"performanceRequirements"`

	// Technology stack
	Frontend       string `json:"frontend" yaml:"frontend"`
	Backend        string `json:"backend" yaml:"backend"`
	Database       string `json:"database" yaml:"database"`
	Infrastructure string `json:"infrastructure" yaml:"infrastructure"`

	SecurityRequirements []string `json:"securityRequirements" yaml:"securityRequirements"`
	Integrations         []string `json:"integrations" yaml:"integrations"`

	AdditionalContext string `json:"additionalContext" yaml:"additionalContext"`
}

// Clean returns a copy with blank entries dropped from every list field.
// Kept entries are not trimmed and keep their order.
func (r Requirements) Clean() Requirements {
	out := r
	out.MainFeatures = nonBlank(r.MainFeatures)
	out.TechnicalConstraints = nonBlank(r.TechnicalConstraints)
	out.Preferences = nonBlank(r.Preferences)
	out.PerformanceRequirements = nonBlank(r.PerformanceRequirements)
	out.SecurityRequirements = nonBlank(r.SecurityRequirements)
	out.Integrations = nonBlank(r.Integrations)
	return out
}

// Validate enforces the fields the form marks as required.
func (r Requirements) Validate() error {
	if strings.TrimSpace(r.SystemName) == "" {
		return ErrSystemNameRequired
	}
	if strings.TrimSpace(r.Purpose) == "" {
		return ErrPurposeRequired
	}
	return nil
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// Architecture is a submitted requirements record held for the session.
type Architecture struct {
	ID           string       `json:"id"`
	Requirements Requirements `json:"requirements"`
	CreatedAt    time.Time    `json:"created_at"`
}

// ArchiveEntry is a generated architecture kept in the optional archive
type ArchiveEntry struct {
	ID           string       `json:"id"`
	SystemName   string       `json:"system_name"`
	Requirements Requirements `json:"requirements"`
	Document     string       `json:"document,omitempty"`
	Diagram      string       `json:"diagram,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}
