package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/campusfind/campusfind/internal/buildinfo"
	"github.com/campusfind/campusfind/internal/cli"
	"github.com/campusfind/campusfind/internal/config"
	"github.com/campusfind/campusfind/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
