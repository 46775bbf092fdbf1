package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kesava936/money-muling-detection/internal/layout"
	"github.com/kesava936/money-muling-detection/internal/ui"
)

func layoutCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "layout <nodeCount>",
		Short: "Show the layout and style chosen for a node count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid node count %q: %w", args[0], err)
			}

			l := layout.SelectLayout(n)
			s := layout.SelectStyle(n)
			w := cmd.OutOrStdout()

			if asJSON {
				return json.NewEncoder(w).Encode(struct {
					Layout layout.Layout `json:"layout"`
					Style  layout.Style  `json:"style"`
				}{l, s})
			}

			fmt.Fprintf(w, "  Layout:   %s (%s)\n", ui.Info.Sprint(l.Class), l.Name)
			fmt.Fprintf(w, "  Node:     radius %d, font %dpx\n", s.NodeRadius, s.FontSize)
			fmt.Fprintf(w, "  Canvas:   %dpx\n", s.CanvasHeight)
			fmt.Fprintf(w, "  Zoom:     %.2f to %.1f\n", s.MinZoom, s.MaxZoom)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}
