package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/kong"

	ferrors "git.home.luguber.info/inful/bookindex/internal/foundation/errors"
	"git.home.luguber.info/inful/bookindex/internal/version"
)

type exitCode int

// Main parses args, runs the selected command and returns the process exit code.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	var cli CLI
	g := &Global{Context: ctx, Stdout: stdout, Stderr: stderr}
	parser, err := kong.New(&cli,
		kong.Name("bookindex"),
		kong.Description("Builds the single-page index of a markdown book and manages its site configuration."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
		kong.Bind(g),
	)
	if err != nil {
		fmt.Fprintf(stderr, "bookindex: %v\n", err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "bookindex: error: %v\n", err)
		return 2
	}

	if err := kctx.Run(); err != nil {
		return ferrors.NewCLIErrorAdapter(cli.Verbose, g.Logger).WithOutput(stderr).Handle(err)
	}
	return 0
}
