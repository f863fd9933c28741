package cli

import (
	"fmt"
	"io"

	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/document"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newDocumentCmd() *cobra.Command {
	var (
		file   string
		pretty bool
	)
	cmd := &cobra.Command{
		Use:   "document",
		Short: "Print the Markdown architecture document",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRequirements(file)
			if err != nil {
				return err
			}
			doc := document.Compose(r)
			if pretty {
				return writePretty(cmd.OutOrStdout(), doc)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), doc)
			return err
		},
	}
	addFileFlag(cmd, &file)
	cmd.Flags().BoolVar(&pretty, "pretty", false, "render the Markdown for the terminal")
	return cmd
}

func writePretty(w io.Writer, md string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}
