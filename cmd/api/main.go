// Package main starts the HTTP server that turns fraud ring payloads into
// renderable graph sessions. Configuration comes from an optional TOML file,
// a .env file and the environment.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kesava936/money-muling-detection/internal/config"
	"github.com/kesava936/money-muling-detection/internal/server"
)

func main() {
	configPath := flag.String("config", os.Getenv("RINGVIZ_CONFIG"), "path to a TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	config.InitLogger(os.Stdout, cfg.Log.Level)

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("🚀 Server starting on %s", cfg.Addr())
	if err := srv.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
