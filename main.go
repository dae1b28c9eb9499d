package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/andareed/siftly-roster/config"
	"github.com/andareed/siftly-roster/grid"
	"github.com/andareed/siftly-roster/logging"
	"github.com/andareed/siftly-roster/roster"
)

var Version = "dev"

var (
	configPath  = pflag.String("config", "", "config file (default "+config.Path()+")")
	logFile     = pflag.StringP("debug", "d", "", "write debug logs to file")
	countFlag   = pflag.IntP("count", "n", 0, "number of records to load")
	seedFlag    = pflag.Uint64("seed", 0, "seed for the generated roster")
	delayFlag   = pflag.Duration("delay", 0, "simulated load latency for the generated roster")
	overscan    = pflag.Int("overscan", 0, "rows rendered beyond each edge of the screen")
	versionFlag = pflag.BoolP("version", "v", false, "print version and exit")
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: siftly-roster [flags] [roster.csv|roster.json]\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	level, _ := cfg.LogLevel()
	if *logFile != "" {
		cfg.Log.File = *logFile
		level = slog.LevelDebug
	}
	cleanup, err := logging.Setup(cfg.Log.File, level)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	logging.Infof("siftly-roster %s: started", Version)

	tag, _ := cfg.CollationTag()
	tui := logging.NewTUIHandler(slog.LevelInfo)
	logger := slog.New(logging.Fanout(slog.Default().Handler(), tui))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src, label := buildSource(cfg)
	opts := modelOptions{
		ctx:         ctx,
		source:      src,
		count:       cfg.Source.Count,
		sourceLabel: label,
		rowHeight:   cfg.Grid.RowHeight,
		overscan:    cfg.Grid.Overscan,
		collation:   tag,
		logger:      logger,
	}
	if cfg.Source.Kind == config.SourceFile {
		opts.sourcePath = cfg.Source.Path
		opts.exportDir = filepath.Dir(cfg.Source.Path)
	}

	p := tea.NewProgram(newModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	tui.SetProgram(p)

	if _, err := p.Run(); err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

// loadConfig reads the config file and applies flags and the positional
// roster file on top.
func loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cfg, err
	}

	flags := pflag.CommandLine
	if flags.Changed("count") {
		cfg.Source.Count = *countFlag
	}
	if flags.Changed("seed") {
		cfg.Source.Seed = *seedFlag
	}
	if flags.Changed("delay") {
		cfg.Source.Delay = *delayFlag
	}
	if flags.Changed("overscan") {
		cfg.Grid.Overscan = *overscan
	}
	if args := pflag.Args(); len(args) > 0 {
		if len(args) > 1 {
			return cfg, fmt.Errorf("expected at most one roster file, got %d", len(args))
		}
		cfg.Source.Kind = config.SourceFile
		cfg.Source.Path = args[0]
	}
	return cfg, cfg.Validate()
}

// buildSource picks the record source. An unset seed means a new roster
// on every run.
func buildSource(cfg config.Config) (grid.Source, string) {
	if cfg.Source.Kind == config.SourceFile {
		return roster.FileSource{Path: cfg.Source.Path}, cfg.Source.Path
	}
	seed := cfg.Source.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return roster.Generator{Seed: seed, Delay: cfg.Source.Delay}, fmt.Sprintf("generated roster (seed %d)", seed)
}
