package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kesava936/money-muling-detection/internal/config"
	"github.com/kesava936/money-muling-detection/internal/server"
	"github.com/kesava936/money-muling-detection/internal/ui"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the graph API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			config.InitLogger(os.Stderr, cfg.Log.Level)

			srv, err := server.New(cfg)
			if err != nil {
				return err
			}

			ui.Banner(cmd.OutOrStdout(), "serving on "+cfg.Addr())

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", os.Getenv("RINGVIZ_CONFIG"), "Path to a TOML config file")
	cmd.Flags().IntVar(&port, "port", 8080, "Listen port")

	return cmd
}
