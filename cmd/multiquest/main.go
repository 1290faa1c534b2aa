// Multiquest plays text-adventure titles authored in Lua.
// Usage: multiquest [--version] [--plain] [--config <file>] [--title <id>] [--script <file>] [--trace]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/nathoo/multiquest/cli"
	"github.com/nathoo/multiquest/config"
	"github.com/nathoo/multiquest/engine"
	"github.com/nathoo/multiquest/engine/fortune"
	"github.com/nathoo/multiquest/engine/rng"
	"github.com/nathoo/multiquest/engine/session"
	"github.com/nathoo/multiquest/loader"
	"github.com/nathoo/multiquest/titles"
	"github.com/nathoo/multiquest/tui"
	"github.com/nathoo/multiquest/types"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: multiquest [--version] [--plain] [--config <file>] [--title <id>] [--script <file>] [--trace]"

func main() {
	plain := false
	trace := false
	var configFile, title, scriptFile string

	args := os.Args[1:]
	value := func(i *int, flag string) string {
		if *i+1 >= len(args) {
			fmt.Fprintf(os.Stderr, "%s requires a value\n%s\n", flag, usage)
			os.Exit(1)
		}
		*i++
		return args[*i]
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("multiquest %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--config":
			configFile = value(&i, "--config")
		case "--title":
			title = value(&i, "--title")
		case "--script":
			scriptFile = value(&i, "--script")
		default:
			fmt.Fprintf(os.Stderr, "unknown argument %q\n%s\n", args[i], usage)
			os.Exit(1)
		}
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(log)

	lib, err := library(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading titles: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store := session.NewStore(lib, session.WithTTL(cfg.TTL()), session.WithLogger(log))
	go store.Run(ctx, cfg.Sweep())

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rng.New(seed)
	eng := engine.New(store, src, fortune.NewCookies(src), log)
	log.Info("multiquest starting", "version", version, "titles", len(lib.Titles()), "seed", src.Seed())
	defer func() {
		log.Info("multiquest stopping", "sessions", store.Len(), "draws", src.Position())
	}()

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(eng, lib)
		c.In = f
		c.EchoInput = true
		c.Title = title
		c.Game.Trace = trace
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		c := cli.New(eng, lib)
		c.Title = title
		c.Game.Trace = trace
		c.Run()
		return
	}

	if err := tui.Run(eng, lib, title); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// library combines the embedded titles with any found in the configured
// titles directory. Titles on disk replace embedded ones with the same id.
func library(cfg *config.Config) (*loader.Library, error) {
	builtin, err := titles.Load()
	if err != nil {
		return nil, fmt.Errorf("built-in titles: %w", err)
	}

	sets := [][]*types.Title{builtin}
	if cfg.TitlesDir != "" {
		extra, err := loader.Load(cfg.TitlesDir)
		if err != nil {
			return nil, fmt.Errorf("titles_dir %s: %w", cfg.TitlesDir, err)
		}
		sets = append(sets, extra)
	}
	return loader.NewLibrary(cfg.DefaultTitle, cfg.PlayerName, sets...)
}
