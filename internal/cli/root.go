// Package cli implements the ringviz command line: rendering payloads to session
// JSON, printing ring summaries, inspecting layout buckets and serving the API.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kesava936/money-muling-detection/internal/models"
	"github.com/kesava936/money-muling-detection/internal/parser"
	"github.com/kesava936/money-muling-detection/internal/ui"
)

var version = "0.1.0"

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ringviz",
		Short: "ringviz · fraud ring graph visualizer",
		Long: ui.Brand.Sprint(ui.Dot+" ringviz") + " · turn fraud ring payloads into renderable graphs\n" +
			ui.Subtle.Sprint("Build, filter and lay out money muling rings"),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("ringviz {{ .Version }}\n")

	root.AddCommand(
		renderCmd(),
		summaryCmd(),
		layoutCmd(),
		serveCmd(),
	)

	return root
}

func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		ui.Bad.Fprintf(os.Stderr, "ringviz: %v\n", err)
		return err
	}
	return nil
}

// readPayload reads and validates a payload file. "-" reads from in.
func readPayload(path string, in io.Reader) (*models.Payload, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	return parser.ParsePayload(data)
}
