package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/bookindex/internal/config"
	"git.home.luguber.info/inful/bookindex/internal/logfields"
)

// Global carries process-wide state shared by all subcommands.
type Global struct {
	Context context.Context
	Logger  *slog.Logger
	Stdout  io.Writer
	Stderr  io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"bookindex.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" default:"withargs" help:"Generate the book index page from the docs directory"`
	Init  InitCmd  `cmd:"" help:"Initialize a new configuration file"`
	Site  SiteCmd  `cmd:"" help:"Write the static site generator configuration"`
	Pages PagesCmd `cmd:"" help:"List pages the static site generator would render"`
}

// AfterApply runs after flag parsing; sets up text logging until the
// configuration file says otherwise.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = newLogger(g.Stderr, config.LogFormatText, level)
	slog.SetDefault(g.Logger)
	return nil
}

// loadConfig reads the configuration file and applies its logging section.
// --verbose always wins over the configured level.
func (c *CLI) loadConfig(g *Global) (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	level := cfg.Logging.Level.SlogLevel()
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = newLogger(g.Stderr, cfg.Logging.Format, level)
	slog.SetDefault(g.Logger)
	g.Logger.Debug("Loaded configuration", logfields.Path(c.Config))
	return cfg, nil
}

func newLogger(w io.Writer, format config.LogFormat, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
