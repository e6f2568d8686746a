package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	ferrors "github.com/benjaminjackson/exa-skills/internal/foundation/errors"
	"github.com/benjaminjackson/exa-skills/internal/metrics"
	"github.com/benjaminjackson/exa-skills/internal/report"
	"github.com/benjaminjackson/exa-skills/internal/skills"
)

// InlineCmd implements the 'inline' command.
type InlineCmd struct {
	DryRun      bool   `name:"dry-run" xor:"mode" help:"Report what would change without writing"`
	Check       bool   `xor:"mode" help:"Fail when any document is out of date; nothing is written"`
	MetricsFile string `name:"metrics-file" type:"path" help:"Write run metrics in Prometheus text format to this file"`
}

func (i *InlineCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repoRoot, cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	preview := i.DryRun || i.Check
	opts := []skills.RunnerOption{
		skills.WithReporter(root.console(g, report.WithDryRun(preview))),
		skills.WithRunDryRun(preview),
	}
	reg := prom.NewRegistry()
	if i.MetricsFile != "" {
		opts = append(opts, skills.WithRecorder(metrics.NewPrometheusRecorder(reg)))
	}

	sum, err := skills.NewRunner(repoRoot, cfg, opts...).Run(ctx)
	if err != nil {
		return err
	}

	if i.MetricsFile != "" {
		if err := metrics.WriteTextfile(i.MetricsFile, reg); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write metrics file").
				WithContext("path", i.MetricsFile).
				Build()
		}
	}
	return summaryError(sum, i.Check)
}

// summaryError turns document-level outcomes into the command's exit status.
func summaryError(sum skills.Summary, check bool) error {
	if sum.Failed > 0 {
		return ferrors.DocumentError(fmt.Sprintf("%d of %d documents failed", sum.Failed, sum.Files)).Build()
	}
	if check && sum.Updated > 0 {
		return ferrors.NewError(ferrors.CategoryStale, fmt.Sprintf("%d of %d documents are out of date", sum.Updated, sum.Files)).Build()
	}
	return nil
}
