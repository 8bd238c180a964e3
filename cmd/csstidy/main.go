// Command csstidy is the CLI front-end for the optimiser core: it
// reads a YAML configuration, parses one or more CSS files, runs the
// optimiser pipeline, and writes the result back out (spec.md §1 "Out
// of scope" — this is the I/O/CLI layer deliberately kept out of the
// core). Built on github.com/urfave/cli/v3, the CLI framework already
// present in the retrieved corpus's richest go.mod
// (rupor-github-fb2cng/cmd/fbc), whose app-shape this command mirrors
// at a much smaller scale: a flat Command with flags, no subcommands.
package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/rafleo/CSSTidy/internal/config"
	"github.com/rafleo/CSSTidy/internal/cssoptimizer"
	"github.com/rafleo/CSSTidy/internal/cssparser"
	"github.com/rafleo/CSSTidy/internal/cssprinter"
)

func main() {
	app := &cli.Command{
		Name:  "csstidy",
		Usage: "parse, optimise, and re-emit CSS",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.StringFlag{Name: "level", Usage: "optimise_shorthands override: none|common|font|background|all"},
			&cli.BoolFlag{Name: "colors", Usage: "override compress_colors to true"},
			&cli.BoolFlag{Name: "font-weight", Usage: "override compress_font_weight to true"},
			&cli.BoolFlag{Name: "write", Aliases: []string{"w"}, Usage: "write the optimised output back to each input file instead of stdout"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log every rewrite at INFORMATION level to stderr"},
		},
		ArgsUsage: "FILE...",
		Action:    run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "csstidy: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if level := cmd.String("level"); level != "" {
		l, err := config.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("csstidy: --level: %w", err)
		}
		cfg.OptimiseShorthands = l
	}
	if cmd.Bool("colors") {
		cfg.CompressColors = true
	}
	if cmd.Bool("font-weight") {
		cfg.CompressFontWeight = true
	}

	log := zap.NewNop()
	if cmd.Bool("verbose") {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("csstidy: building logger: %w", err)
		}
		log = l
		defer log.Sync() //nolint:errcheck
	}

	parser := cssparser.New(log)
	printer := cssprinter.New(log)
	opt := cssoptimizer.New(cfg)
	opt.Log = log

	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("csstidy: at least one FILE argument is required")
	}

	for _, path := range paths {
		if err := processFile(parser, printer, opt, path, cmd.Bool("write")); err != nil {
			return err
		}
	}
	return nil
}

func processFile(parser *cssparser.Parser, printer *cssprinter.Printer, opt *cssoptimizer.Optimizer, path string, write bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("csstidy: reading %s: %w", path, err)
	}

	blocks, parseErr := parser.Parse(src)
	// Parse errors are diagnostics, not fatal (spec.md §A.2): a
	// best-effort tree is still optimised and printed.
	if parseErr != nil {
		fmt.Fprintf(os.Stderr, "csstidy: %s: %v\n", path, parseErr)
	}

	for _, block := range blocks {
		opt.Postparse(block)
	}

	out := printer.Print(blocks)
	if !write {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("csstidy: writing %s: %w", path, err)
	}
	return nil
}
