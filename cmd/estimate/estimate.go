package estimate

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/leetkit/cmd/common"
	"github.com/gigurra/leetkit/internal/leetspeak"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type Params struct {
	Input          string `pos:"true" help:"Word or phrase to estimate."`
	SkipCharacters string `short:"c" optional:"true" help:"Input characters to leave unchanged (case-sensitive)." default:""`
	ShortList      bool   `short:"s" optional:"true" help:"Use the reduced substitution table."`
	Positions      bool   `short:"p" optional:"true" help:"Show the candidates for every input position."`
	WarnSize       string `optional:"true" help:"Warn when the estimated output is larger than this (0 disables)." default:"1g"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "estimate",
		Short:       "Show how many lines and bytes a word list would take",
		Long:        "Compute the number of permutations and the exact output size for an input without generating anything.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			os.Exit(Run(params, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func Run(params *Params, stdout, stderr io.Writer) int {
	warnSize, err := common.ParseSize(params.WarnSize)
	if err != nil {
		return common.ReportError(stderr, "estimate", common.ConfigError("--warn-size: %v", err))
	}

	tbl := leetspeak.SelectTable(params.ShortList)
	exp := leetspeak.Resolve(params.Input, leetspeak.NewSkipSet(params.SkipCharacters), tbl)
	lines, size := exp.Count(), exp.OutputBytes()

	fmt.Fprintf(stdout, "Input:  %q\n", params.Input)
	fmt.Fprintf(stdout, "Table:  %s\n", tbl.Name())
	fmt.Fprintf(stdout, "Lines:  %s\n", common.FormatCount(lines))
	fmt.Fprintf(stdout, "Size:   %s (%s bytes)\n", common.FormatBytes(size), common.FormatCount(size))

	if params.Positions {
		fmt.Fprintln(stdout)
		renderPositions(stdout, exp)
	}

	common.WarnIfLarge(stderr, lines, size, warnSize)
	return common.ExitOK
}

func renderPositions(w io.Writer, exp *leetspeak.Expansion) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Char", "Candidates", "Tokens"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	for i, p := range exp.Positions() {
		tokens := "(unchanged)"
		if p.Substituted() {
			tokens = strings.Join(p.Candidates, "  ")
		}
		t.AppendRow(table.Row{i + 1, strconv.QuoteRune(p.Char), len(p.Candidates), tokens})
	}

	substituted := lo.CountBy(exp.Positions(), func(p leetspeak.Position) bool {
		return p.Substituted()
	})
	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d of %d positions substituted", substituted, len(exp.Positions()))})
	t.Render()
}
