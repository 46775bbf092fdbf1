package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kesava936/money-muling-detection/internal/filter"
	"github.com/kesava936/money-muling-detection/internal/models"
	"github.com/kesava936/money-muling-detection/internal/parser"
	"github.com/kesava936/money-muling-detection/internal/ui"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "summary <payload.json>",
		Aliases: []string{"sum"},
		Short:   "Summarize the rings and accounts in a payload",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			graph, err := parser.BuildGraph(payload)
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), payload, graph)
			return nil
		},
	}
}

func printSummary(w io.Writer, payload *models.Payload, graph *models.Graph) {
	ui.Banner(w, "fraud ring summary")

	if s := payload.Summary; s != nil {
		fmt.Fprintf(w, "  Accounts analyzed:  %d\n", s.TotalAccountsAnalyzed)
		fmt.Fprintf(w, "  Flagged accounts:   %d\n", s.SuspiciousAccountsFlagged)
		fmt.Fprintf(w, "  Rings detected:     %d\n", s.FraudRingsDetected)
		fmt.Fprintf(w, "  Processing time:    %.2fs\n", s.ProcessingTimeSeconds)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "  Graph:              %d nodes, %d edges\n", graph.Stats.TotalNodes, graph.Stats.TotalEdges)
	fmt.Fprintln(w)

	legend := filter.Legend(payload.FraudRings)
	if len(legend) == 0 {
		fmt.Fprintf(w, "  %s\n", filter.Apply(graph, nil).EmptyMessage())
		return
	}

	for _, info := range legend {
		fmt.Fprintf(w, "  %s %-12s %s\n", ui.Swatch(info.Color), info.Label,
			ui.Subtle.Sprintf("%d accounts, %d links", graph.Stats.NodesByPattern[info.Pattern], graph.Stats.EdgesByPattern[info.Pattern]))
	}
	fmt.Fprintln(w)

	rings := append([]models.FraudRing(nil), payload.FraudRings...)
	sort.SliceStable(rings, func(i, j int) bool {
		return rings[i].RiskScore > rings[j].RiskScore
	})

	headers := []string{"Ring", "Pattern", "Members", "Risk", "Level"}
	var rows [][]string
	for _, r := range rings {
		level := models.RiskLevel(r.RiskScore)
		rows = append(rows, []string{
			r.RingID,
			r.PatternType.Info().Label,
			strconv.Itoa(len(r.MemberAccounts)),
			strconv.FormatFloat(r.RiskScore, 'f', 1, 64),
			ui.Risk(level),
		})
	}
	ui.Table(w, headers, rows)
}
