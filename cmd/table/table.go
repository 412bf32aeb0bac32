package table

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/leetkit/cmd/common"
	"github.com/gigurra/leetkit/internal/leetspeak"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type Params struct {
	ShortList bool   `short:"s" optional:"true" help:"Show the reduced table instead of the full one."`
	Chars     string `short:"k" optional:"true" help:"Only show these characters." default:""`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "table",
		Short:       "Print the leetspeak substitution table",
		Long:        "Print every character that gets substituted together with its candidate tokens, in generation order.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			os.Exit(Run(params, os.Stdout))
		},
	}.ToCobra()
}

func Run(params *Params, stdout io.Writer) int {
	tbl := leetspeak.SelectTable(params.ShortList)

	keys := tbl.Keys()
	if params.Chars != "" {
		keys = lo.Filter(keys, func(k rune, _ int) bool {
			return strings.ContainsRune(strings.ToLower(params.Chars), k)
		})
	}

	t := prettytable.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(prettytable.StyleLight)
	t.SetTitle(fmt.Sprintf("%s table", tbl.Name()))
	t.AppendHeader(prettytable.Row{"Char", "Count", "Repeated", "Tokens"})
	t.SetColumnConfigs([]prettytable.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	total := 0
	for _, k := range keys {
		tokens, _ := tbl.Lookup(k)
		total += len(tokens)
		t.AppendRow(prettytable.Row{
			strconv.QuoteRune(k),
			len(tokens),
			strings.Join(lo.FindDuplicates(tokens), " "),
			strings.Join(tokens, "  "),
		})
	}
	t.AppendFooter(prettytable.Row{"", total, "", fmt.Sprintf("%d characters", len(keys))})
	t.Render()

	return common.ExitOK
}
