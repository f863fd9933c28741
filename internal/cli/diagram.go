package cli

import (
	"encoding/json"
	"io"

	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/diagram"
	"github.com/spf13/cobra"
)

func newDiagramCmd() *cobra.Command {
	var (
		file    string
		summary bool
	)
	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Print the Mermaid diagram definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRequirements(file)
			if err != nil {
				return err
			}
			if summary {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(diagram.Summarize(r))
			}
			_, err = io.WriteString(cmd.OutOrStdout(), diagram.Compose(r))
			return err
		},
	}
	addFileFlag(cmd, &file)
	cmd.Flags().BoolVar(&summary, "summary", false, "print the layer summary as JSON instead")
	return cmd
}
