package commands

import (
	"fmt"

	"git.home.luguber.info/inful/bookindex/internal/logfields"
	"git.home.luguber.info/inful/bookindex/internal/site"
)

// SiteCmd implements the 'site' command.
type SiteCmd struct {
	Output string `short:"o" help:"Generator config file to write (overrides site.config_path; .json, .yaml or .yml)"`
}

func (s *SiteCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	path := s.Output
	if path == "" {
		path = cfg.Site.ConfigPath
	}
	if err := site.Write(path, cfg.SiteSettings()); err != nil {
		return err
	}
	g.Logger.Info("Wrote site configuration", logfields.Output(path))
	fmt.Fprintln(g.Stdout, path)
	return nil
}
