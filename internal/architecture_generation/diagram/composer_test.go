package diagram

import (
	"regexp"
	"strings"
	"testing"

	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	nodeLine = regexp.MustCompile(`(?m)^        ([A-Z])\[`)
	edgeLine = regexp.MustCompile(`(?m)^    ([A-Z]) --> ([A-Z])$`)
)

func TestCompose_Fallbacks(t *testing.T) {
	out := Compose(domain.Requirements{})

	assert.True(t, strings.HasPrefix(out, "graph TB\n    subgraph \"Client Layer\"\n"))
	assert.Contains(t, out, "        A[User Interface<br/>Frontend]\n")
	assert.Contains(t, out, "        C[Web App<br/>Frontend]\n")
	assert.Contains(t, out, "        G[Business Logic<br/>Backend]\n")
	assert.Contains(t, out, "        I[Primary Database<br/>Database]\n")
}

func TestCompose_SubstitutesLabels(t *testing.T) {
	out := Compose(domain.Requirements{Frontend: "React", Backend: "Go", Database: "PostgreSQL", Infrastructure: "AWS"})

	assert.Contains(t, out, "        A[User Interface<br/>React]\n")
	assert.Contains(t, out, "        C[Web App<br/>React]\n")
	assert.Contains(t, out, "        G[Business Logic<br/>Go]\n")
	assert.Contains(t, out, "        I[Primary Database<br/>PostgreSQL]\n")
	// Infrastructure nodes keep their fixed labels.
	assert.Contains(t, out, "        L[Container Orchestration<br/>Kubernetes/Docker Swarm]\n")
	assert.NotContains(t, out, "AWS]")
}

func TestCompose_TopologyInvariant(t *testing.T) {
	inputs := []domain.Requirements{
		{},
		{SystemName: "Shop", Frontend: "Vue", Backend: "Go", Database: "Mongo"},
		{Frontend: "x y z", Backend: "Rust --> Actix", Database: "", Infrastructure: "GCP",
			MainFeatures: []string{"a", "b"}, Integrations: []string{"c"}},
	}

	base := Compose(inputs[0])
	baseNodes := nodeLine.FindAllStringSubmatch(base, -1)
	baseEdges := edgeLine.FindAllStringSubmatch(base, -1)
	require.Len(t, baseNodes, 17)
	require.Len(t, baseEdges, 20)

	for _, in := range inputs[1:] {
		out := Compose(in)
		assert.Equal(t, baseNodes, nodeLine.FindAllStringSubmatch(out, -1))
		assert.Equal(t, baseEdges, edgeLine.FindAllStringSubmatch(out, -1))

		// Undoing the four label substitutions yields the fallback diagram.
		restored := out
		restored = strings.Replace(restored, "User Interface<br/>"+or(in.Frontend, FallbackFrontend)+"]", "User Interface<br/>Frontend]", 1)
		restored = strings.Replace(restored, "Web App<br/>"+or(in.Frontend, FallbackFrontend)+"]", "Web App<br/>Frontend]", 1)
		restored = strings.Replace(restored, "Business Logic<br/>"+or(in.Backend, FallbackBackend)+"]", "Business Logic<br/>Backend]", 1)
		restored = strings.Replace(restored, "Primary Database<br/>"+or(in.Database, FallbackDatabase)+"]", "Primary Database<br/>Database]", 1)
		assert.Equal(t, base, restored)
	}
}

func TestCompose_ClassAssignments(t *testing.T) {
	out := Compose(domain.Requirements{})

	assert.Contains(t, out, "    classDef frontend fill:#e1f5fe,stroke:#01579b,stroke-width:2px\n")
	assert.Contains(t, out, "    class A,B,C frontend\n")
	assert.Contains(t, out, "    class D,E,F,G,H backend\n")
	assert.Contains(t, out, "    class I,J,K database\n")
	assert.Contains(t, out, "    class L,M,N infrastructure\n")
	assert.Contains(t, out, "    class O,P,Q external\n")
}

func TestTopology_ReturnsCopy(t *testing.T) {
	g := Topology()
	g.Edges[0] = Edge{From: "Z", To: "Z"}
	g.Subgraphs[0].Nodes[0].Title = "changed"

	assert.Equal(t, Edge{From: "A", To: "D"}, Topology().Edges[0])
	assert.Equal(t, "User Interface", Topology().Subgraphs[0].Nodes[0].Title)
	assert.Len(t, Topology().Nodes(), 17)
}

func TestSummarize(t *testing.T) {
	c := Summarize(domain.Requirements{Backend: "Go"})

	assert.Equal(t, Components{
		Frontend:       "Modern web framework",
		Backend:        "Go",
		Database:       "Database system",
		Infrastructure: "Cloud infrastructure",
	}, c)
}

func TestThemeConfig(t *testing.T) {
	theme := ThemeConfig()
	assert.Equal(t, "default", theme.Theme)
	assert.Equal(t, "strict", theme.SecurityLevel)
	assert.Equal(t, "#3b82f6", theme.ThemeVariables["primaryColor"])
	assert.Len(t, theme.ThemeVariables, 6)
}
