package cli

import (
	"fmt"
	"path/filepath"

	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/diagram"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/document"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/export"
	"github.com/spf13/cobra"
)

func newGenerateCmd(newRenderer RendererFactory) *cobra.Command {
	var (
		file   string
		outDir string
		svg    bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the document, diagram definition and optionally the SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "yaml" && format != "json" {
				return fmt.Errorf("--format must be yaml or json, got %q", format)
			}
			r, err := loadRequirements(file)
			if err != nil {
				return err
			}
			name := r.SystemName
			out := cmd.OutOrStdout()

			written := []string{}
			write := func(filename string, b []byte) error {
				path := filepath.Join(outDir, filename)
				if err := export.WriteFile(path, b); err != nil {
					return err
				}
				written = append(written, path)
				return nil
			}

			if err := write(export.DocumentFilename(name), []byte(document.Compose(r))); err != nil {
				return err
			}
			def := diagram.Compose(r)
			if err := write(export.DefinitionFilename(name), []byte(def)); err != nil {
				return err
			}

			reqPath := filepath.Join(outDir, export.RequirementsFilename(name, format))
			if format == "json" {
				err = export.WriteJSON(reqPath, r)
			} else {
				err = export.WriteYAML(reqPath, r)
			}
			if err != nil {
				return err
			}
			written = append(written, reqPath)

			if svg {
				renderer, err := newRenderer()
				if err != nil {
					return err
				}
				b, err := renderer.Render(cmd.Context(), def)
				if err != nil {
					return fmt.Errorf("render diagram: %w", err)
				}
				if err := write(export.DiagramFilename(name), b); err != nil {
					return err
				}
			}

			for _, p := range written {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}
	addFileFlag(cmd, &file)
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().BoolVar(&svg, "svg", false, "also render the diagram to SVG")
	cmd.Flags().StringVar(&format, "format", "yaml", "format of the saved requirements record (yaml|json)")
	return cmd
}
