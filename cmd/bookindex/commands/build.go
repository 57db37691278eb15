package commands

import (
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/bookindex/internal/index"
	"git.home.luguber.info/inful/bookindex/internal/logfields"
	"git.home.luguber.info/inful/bookindex/internal/metrics"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	DocsDir     string   `name:"docs-dir" short:"d" help:"Directory holding the book chapters (overrides index.docs_dir)"`
	Readme      string   `name:"readme" help:"README prepended to the index (defaults to <docs-dir>/README.md)"`
	Output      string   `short:"o" help:"Index file to write (defaults to <docs-dir>/index.md)"`
	Exclude     []string `name:"exclude" help:"Filename to skip; repeatable, replaces index.exclude_files"`
	MetricsFile string   `name:"metrics-file" help:"Write Prometheus metrics to this textfile after the run"`
	Strict      bool     `help:"Exit non-zero when index generation fails"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	opts := b.apply(cfg.IndexOptions())

	reg := prometheus.NewRegistry()
	res := index.Run(g.Context, opts,
		index.WithLogger(g.Logger),
		index.WithRecorder(metrics.NewPrometheusRecorder(reg)))

	textfile := b.MetricsFile
	if textfile == "" {
		textfile = cfg.Metrics.Textfile
	}
	if err := metrics.WriteTextfile(textfile, reg); err != nil {
		g.Logger.Warn("Failed to write metrics textfile", logfields.Path(textfile), logfields.Error(err))
	}

	if !res.OK() && b.Strict {
		return res.Err
	}
	return nil
}

// apply overlays flags on the configured options. A new docs dir moves the
// README and index paths with it unless those are given too.
func (b *BuildCmd) apply(opts index.Options) index.Options {
	if b.DocsDir != "" {
		opts.DocsDir = b.DocsDir
		opts.ReadmePath = filepath.Join(b.DocsDir, "README.md")
		opts.IndexPath = filepath.Join(b.DocsDir, "index.md")
	}
	if b.Readme != "" {
		opts.ReadmePath = b.Readme
	}
	if b.Output != "" {
		opts.IndexPath = b.Output
	}
	if len(b.Exclude) > 0 {
		opts.ExcludeFiles = append([]string(nil), b.Exclude...)
	}
	return opts
}
