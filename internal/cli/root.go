package cli

import (
	"github.com/GoSim-25-26J-441/archgen-backend/config"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/diagram/render"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/domain"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/ingest/parser"
	"github.com/spf13/cobra"
)

// RendererFactory builds the renderer used by `generate --svg`.
type RendererFactory func() (render.Renderer, error)

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd(rendererFromConfig).Execute()
}

// NewRootCmd constructs the archgen command tree.
func NewRootCmd(newRenderer RendererFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "archgen",
		Short:         "Generate architecture documents and diagrams from a requirements file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newDocumentCmd())
	cmd.AddCommand(newDiagramCmd())
	cmd.AddCommand(newGenerateCmd(newRenderer))

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

// rendererFromConfig uses the same RENDERER* environment as the server,
// without the redis cache.
func rendererFromConfig() (render.Renderer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return render.New(render.Options{
		Kind:       cfg.Renderer.Kind,
		MermaidBin: cfg.Renderer.MermaidBin,
		URL:        cfg.Renderer.URL,
		Timeout:    cfg.Renderer.Timeout,
		RPS:        cfg.Renderer.RPS,
		Burst:      cfg.Renderer.Burst,
	})
}

func addFileFlag(cmd *cobra.Command, file *string) {
	cmd.Flags().StringVarP(file, "file", "f", "", "requirements file (yaml or json)")
	_ = cmd.MarkFlagRequired("file")
}

func loadRequirements(file string) (domain.Requirements, error) {
	r, err := parser.ParseFile(file)
	if err != nil {
		return domain.Requirements{}, err
	}
	if err := r.Validate(); err != nil {
		return domain.Requirements{}, err
	}
	return r, nil
}
