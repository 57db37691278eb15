package commands

import (
	"fmt"

	"git.home.luguber.info/inful/bookindex/internal/logfields"
	"git.home.luguber.info/inful/bookindex/internal/site"
)

// PagesCmd implements the 'pages' command.
type PagesCmd struct {
	DocsDir string `name:"docs-dir" short:"d" help:"Directory to scan (overrides index.docs_dir)"`
}

func (p *PagesCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	docsDir := cfg.Index.DocsDir
	if p.DocsDir != "" {
		docsDir = p.DocsDir
	}

	m, err := site.NewMatcher(cfg.Site.PagePatterns)
	if err != nil {
		return err
	}
	pages, err := m.Pages(docsDir)
	if err != nil {
		return err
	}
	for _, page := range pages {
		fmt.Fprintln(g.Stdout, page)
	}
	g.Logger.Debug("Listed pages", logfields.Path(docsDir), logfields.Count(len(pages)))

	if !m.Covers(docsDir, cfg.Index.IndexPath) {
		g.Logger.Warn("Index page is not matched by site page patterns", logfields.Output(cfg.Index.IndexPath))
	}
	return nil
}
