package common

import (
	"math/big"

	"github.com/dustin/go-humanize"
)

// FormatCount renders a line count with thousands separators.
func FormatCount(n *big.Int) string {
	return humanize.BigComma(n)
}

// FormatBytes renders a byte size in SI units, e.g. "126 kB".
func FormatBytes(n *big.Int) string {
	return humanize.BigBytes(n)
}

// FormatUint is FormatCount for counters.
func FormatUint(n uint64) string {
	return humanize.Comma(int64(n))
}

// Percent returns done/total in percent, capped at 100.
func Percent(done uint64, total *big.Int) float64 {
	if total.Sign() == 0 {
		return 100
	}
	ratio, _ := new(big.Rat).SetFrac(new(big.Int).SetUint64(done), total).Float64()
	return min(ratio*100, 100)
}

// FormatSize renders a byte counter in SI units.
func FormatSize(n uint64) string {
	return humanize.Bytes(n)
}
