package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/danunant/bbank/internal/buildinfo"
	"github.com/danunant/bbank/internal/cli"
	"github.com/danunant/bbank/internal/config"
	"github.com/danunant/bbank/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
