package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/benjaminjackson/exa-skills/cmd/inline-requirements/commands"
	"github.com/benjaminjackson/exa-skills/internal/config"
	ferrors "github.com/benjaminjackson/exa-skills/internal/foundation/errors"
	"github.com/benjaminjackson/exa-skills/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes the selected command and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cli := &commands.CLI{}
	global := &commands.Global{Stdout: stdout, Stderr: stderr}

	parser, err := kong.New(cli,
		kong.Name("inline-requirements"),
		kong.Description("Inline shared requirements from the common requirements document into SKILL.md files."),
		kong.Writers(stdout, stderr),
		kong.Vars{
			"version":     version.String(),
			"config_file": config.DefaultFileName,
		},
		kong.Bind(global, cli),
	)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "❌ %v\n", err)
		return 1
	}

	adapter := func() *ferrors.CLIErrorAdapter {
		return ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).WithOutput(stderr)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return adapter().Report(ferrors.ValidationError("invalid arguments").WithCause(err).Build())
	}
	if err := kctx.Run(); err != nil {
		return adapter().Report(err)
	}
	return 0
}
