package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/mizusawa-dev/studyshare/internal/buildinfo"
	"github.com/mizusawa-dev/studyshare/internal/cli"
	"github.com/mizusawa-dev/studyshare/internal/config"
	"github.com/mizusawa-dev/studyshare/internal/filex"
	"github.com/mizusawa-dev/studyshare/internal/logging"
)

func slogLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel(cfg.LogLevel),
	})))

	if _, err := filex.EnsureDir(cfg.DataDir); err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
