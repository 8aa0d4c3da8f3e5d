package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/karmator/internal/config"
	"github.com/jask/karmator/internal/export"
	"github.com/jask/karmator/internal/logging"
	"github.com/jask/karmator/internal/shuffle"
	"github.com/jask/karmator/internal/tui"
)

type options struct {
	Config   string `short:"c" type:"path" help:"Config file path." env:"KARMATOR_CONFIG"`
	Tab      string `short:"t" help:"Start tab (pair, classic, altin-gunu)."`
	Seed     uint64 `help:"Random seed; 0 seeds from the clock."`
	LogLevel string `help:"Log level override (debug, info, warn, error)."`
}

func main() {
	var opts options
	kong.Parse(&opts,
		kong.Name("karmator"),
		kong.Description("Shuffle names into teams or a draw order."),
	)

	path := opts.Config
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if opts.Tab != "" {
		cfg.UI.StartTab = opts.Tab
	}
	if opts.Seed != 0 {
		cfg.Shuffle.Seed = opts.Seed
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	closer, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	exporter := &export.Exporter{DownloadDir: cfg.Export.DownloadDir, Log: slog.Default()}
	if cfg.Export.Clipboard {
		exporter.Clipboard = export.OSC52{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.Info("starting", "tab", cfg.UI.StartTab, "seeded", cfg.Shuffle.Seed != 0)
	app := tui.New(ctx, cfg, tui.Services{
		Shuffler: shuffle.New(cfg.Shuffle.Seed),
		Exporter: exporter,
		Log:      slog.Default(),
	})
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		slog.Error("tui exited", "err", err)
		log.Fatalf("tui: %v", err)
	}
}
