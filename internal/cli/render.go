package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kesava936/money-muling-detection/internal/models"
	"github.com/kesava936/money-muling-detection/internal/parser"
	"github.com/kesava936/money-muling-detection/internal/render"
)

func renderCmd() *cobra.Command {
	var (
		pattern string
		hub     string
		pretty  bool
	)

	cmd := &cobra.Command{
		Use:   "render <payload.json>",
		Short: "Print the render session for a payload",
		Long:  "Builds the graph for a payload and prints the session a renderer would receive.\nUse - to read the payload from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hubPosition, err := parser.ParseHubPosition(hub)
			if err != nil {
				return err
			}

			payload, err := readPayload(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			graph, err := parser.BuildGraph(payload, parser.WithHubPosition(hubPosition))
			if err != nil {
				return err
			}

			viewer := render.NewViewer(nil)
			session := viewer.Load(payload, graph)
			if pattern != "" {
				if session, err = viewer.Select(models.PatternType(pattern)); err != nil {
					return err
				}
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				encoder.SetIndent("", "  ")
			}
			if err := encoder.Encode(session); err != nil {
				return fmt.Errorf("failed to encode session: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Only show rings of this pattern")
	cmd.Flags().StringVar(&hub, "hub", parser.DefaultHubPosition.String(), "Hub member for fan patterns (first|last)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON output")

	return cmd
}
