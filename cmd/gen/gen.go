package gen

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/leetkit/cmd/common"
	"github.com/gigurra/leetkit/internal/leetspeak"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type Params struct {
	Input          string `pos:"true" help:"Word or phrase to expand into leetspeak permutations."`
	Output         string `pos:"true" help:"Output file for the word list ('-' for stdout). Existing files are overwritten."`
	SkipCharacters string `short:"c" optional:"true" help:"Input characters to leave unchanged (case-sensitive)." default:""`
	ShortList      bool   `short:"s" optional:"true" help:"Use the reduced substitution table to shrink the output."`
	CheckSpace     bool   `optional:"true" help:"Refuse to start when the estimated output exceeds free disk space (default: only warn)."`
	WarnSize       string `optional:"true" help:"Warn when the estimated output is larger than this (e.g. 500m, 2g; 0 disables)." default:"1g"`
	Progress       string `optional:"true" help:"Show progress on stderr: 'auto', 'always' or 'never'." default:"auto" alts:"auto,always,never"`
	Verbose        bool   `short:"v" optional:"true" help:"Log diagnostics to stderr."`
}

func Cmd() *cobra.Command {
	return newCmd(os.Exit)
}

func newCmd(exit func(int)) *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "gen",
		Short: "Write every leetspeak permutation of a word to a file",
		Long: `Replace each character of the input with every common leetspeak lookalike and write all
combinations (the Cartesian product) to the output file, one per line.

Output grows fast: 'hello' gives 12,852 lines (116 kB), 'hellohello' gives 165,173,904 lines
(2.8 GB). Use --short-list or --skip-characters to keep it manageable, or run
'estimate' first.

Examples:
  text2leet inputstring output_file.txt -c st
  text2leet fluffy pet_name_word_list.txt -s`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			ctx, stop := common.InterruptContext()
			exitCode := Run(ctx, cmd.Root().Name(), params, cmd.ErrOrStderr())
			stop()
			exit(exitCode)
		},
	}.ToCobra()
}

// Run generates the word list and returns the process exit code. Errors are
// reported on stderr prefixed with tool.
func Run(ctx context.Context, tool string, params *Params, stderr io.Writer) int {
	logger := common.NewLogger(params.Verbose, stderr)
	defer func() { _ = logger.Sync() }()

	_, err := Generate(ctx, params, stderr, logger)
	return common.ReportError(stderr, tool, err)
}

// Generate resolves the input, checks the estimate against the destination
// and streams the word list to params.Output.
func Generate(ctx context.Context, params *Params, stderr io.Writer, logger *zap.Logger) (leetspeak.Stats, error) {
	if params.Output == "" {
		return leetspeak.Stats{}, common.ConfigError("output path must not be empty")
	}
	warnSize, err := common.ParseSize(params.WarnSize)
	if err != nil {
		return leetspeak.Stats{}, common.ConfigError("--warn-size: %v", err)
	}
	if !validProgressMode(params.Progress) {
		return leetspeak.Stats{}, common.ConfigError("--progress must be one of auto, always, never (got %q)", params.Progress)
	}

	table := leetspeak.SelectTable(params.ShortList)
	exp := leetspeak.Resolve(params.Input, leetspeak.NewSkipSet(params.SkipCharacters), table)
	lines, size := exp.Count(), exp.OutputBytes()

	logger.Debug("resolved input",
		zap.String("table", table.Name()),
		zap.Int("positions", len(exp.Positions())),
		zap.String("lines", lines.String()),
		zap.String("bytes", size.String()),
	)

	common.WarnIfLarge(stderr, lines, size, warnSize)

	if params.Output != "-" {
		if err := checkFreeSpace(params.Output, size, freeSpace, logger); err != nil {
			if params.CheckSpace {
				return leetspeak.Stats{}, &leetspeak.StageError{Stage: leetspeak.StagePreflight, Path: params.Output, Err: err}
			}
			common.Warn(stderr, "%s: %v; writing anyway", params.Output, err)
		}
	}

	progress := &leetspeak.Progress{}
	var reporter *progressReporter
	if progressEnabled(params.Progress, stderr) {
		reporter = startProgress(stderr, progress, lines, progressInterval)
	}

	start := time.Now()
	stats, err := leetspeak.WriteFile(ctx, exp, params.Output, progress)
	// The reporter shares stderr with the logger.
	if reporter != nil {
		reporter.Stop()
	}
	logger.Debug("write finished",
		zap.String("output", params.Output),
		zap.Uint64("lines", stats.Lines),
		zap.Uint64("bytes", stats.Bytes),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err),
	)
	return stats, err
}
