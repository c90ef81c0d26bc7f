package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/prompt"
	"github.com/lox/blackjack/internal/session"
	"github.com/lox/blackjack/internal/store"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" help:"Path to HCL config file" default:"blackjack.hcl"`
	SaveFile string           `help:"Path to the save file (overrides config)"`
	LogFile  string           `help:"Write a debug log to this file (overrides config)"`
	Seed     int64            `help:"Shuffle seed for deterministic play (overrides config)"`
}

func main() {
	// Local .env overrides are optional
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-player blackjack against an automated dealer"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		log.Fatal("Failed to load config", "path", cli.Config, "error", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatal("Failed to apply environment overrides", "error", err)
	}

	// Flags win over config file and environment
	if cli.SaveFile != "" {
		cfg.Game.SaveFile = cli.SaveFile
	}
	if cli.LogFile != "" {
		cfg.Game.LogFile = cli.LogFile
	}
	if cli.Seed != 0 {
		cfg.Game.Seed = cli.Seed
	}

	logger, closeLog, err := newLogger(cfg.Game.LogFile)
	if err != nil {
		log.Fatal("Failed to open log file", "path", cfg.Game.LogFile, "error", err)
	}
	defer closeLog()

	st := store.New(cfg.Game.SaveFile, cfg.Game.StartingBankroll, logger)
	agent := prompt.New(os.Stdin, os.Stdout)
	renderer := display.New(os.Stdout)

	var opts []session.Option
	if cfg.Game.Seed != 0 {
		opts = append(opts, session.WithSeed(cfg.Game.Seed))
	}

	sess := session.New(st, agent, renderer, logger, opts...)
	if err := sess.Run(); err != nil {
		log.Fatal("Session ended with error", "error", err)
	}

	ctx.Exit(0)
}

// newLogger returns a file-backed debug logger, or a discarding one when no
// log file is configured. Logging goes to a file so it never interleaves
// with the game output on the terminal.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
