package leet

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/leetkit/cmd/common"
	"github.com/gigurra/leetkit/internal/leetspeak"
	"github.com/spf13/cobra"
)

type Params struct {
	Text           []string `pos:"true" optional:"true" help:"Text to convert to l33tsp34k. If none provided, reads lines from stdin."`
	Count          int      `short:"n" help:"Number of random renderings per input." default:"1"`
	SkipCharacters string   `short:"c" optional:"true" help:"Input characters to leave unchanged (case-sensitive)." default:""`
	ShortList      bool     `short:"s" optional:"true" help:"Use the reduced substitution table."`
	Seed           int64    `optional:"true" help:"Random seed for repeatable output (0 picks one at random)." default:"0"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "leet",
		Short:       "Convert text to random l33tsp34k",
		Long:        "Render text with one random candidate per character from the substitution table. Every rendering is a line that 'gen' would also produce.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			os.Exit(Run(params, os.Stdin, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func Run(params *Params, stdin io.Reader, stdout, stderr io.Writer) int {
	if params.Count < 1 {
		return common.ReportError(stderr, "leet", common.ConfigError("--count must be at least 1 (got %d)", params.Count))
	}

	table := leetspeak.SelectTable(params.ShortList)
	skip := leetspeak.NewSkipSet(params.SkipCharacters)
	rng := newRand(params.Seed)

	emit := func(text string) {
		exp := leetspeak.Resolve(text, skip, table)
		for range params.Count {
			fmt.Fprintln(stdout, leetify(exp, rng))
		}
	}

	if len(params.Text) > 0 {
		emit(strings.Join(params.Text, " "))
		return common.ExitOK
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		emit(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "leet: error reading: %v\n", err)
		return common.ExitFailure
	}
	return common.ExitOK
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// leetify picks one candidate per position, which is a uniform draw from the
// full Cartesian product.
func leetify(exp *leetspeak.Expansion, rng *rand.Rand) string {
	var result strings.Builder
	for _, p := range exp.Positions() {
		result.WriteString(p.Candidates[rng.IntN(len(p.Candidates))])
	}
	return result.String()
}
