// Package diagram builds the Mermaid system diagram for a requirements record.
package diagram

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/domain"
)

// Node label fallbacks for empty technology fields.
const (
	FallbackFrontend = "Frontend"
	FallbackBackend  = "Backend"
	FallbackDatabase = "Database"
)

// Compose renders the Mermaid definition for r. Only the slot labels depend
// on r; nodes, edges and styling are constant.
func Compose(r domain.Requirements) string {
	labels := map[Slot]string{
		SlotFrontend: or(r.Frontend, FallbackFrontend),
		SlotBackend:  or(r.Backend, FallbackBackend),
		SlotDatabase: or(r.Database, FallbackDatabase),
	}

	var b strings.Builder
	b.WriteString("graph " + topology.Direction + "\n")

	for _, sg := range topology.Subgraphs {
		fmt.Fprintf(&b, "    subgraph %q\n", sg.Title)
		for _, n := range sg.Nodes {
			tech := n.Tech
			if n.Slot != SlotNone {
				tech = labels[n.Slot]
			}
			fmt.Fprintf(&b, "        %s[%s<br/>%s]\n", n.ID, n.Title, tech)
		}
		b.WriteString("    end\n\n")
	}

	for _, e := range topology.Edges {
		fmt.Fprintf(&b, "    %s --> %s\n", e.From, e.To)
	}
	b.WriteString("\n")

	for _, c := range topology.Classes {
		fmt.Fprintf(&b, "    classDef %s %s\n", c.Name, c.Style)
	}
	b.WriteString("\n")

	nodes := topology.Nodes()
	for _, c := range topology.Classes {
		var ids []string
		for _, n := range nodes {
			if n.Class == c.Name {
				ids = append(ids, n.ID)
			}
		}
		if len(ids) > 0 {
			fmt.Fprintf(&b, "    class %s %s\n", strings.Join(ids, ","), c.Name)
		}
	}

	return b.String()
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
