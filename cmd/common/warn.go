package common

import (
	"fmt"
	"io"
	"math/big"

	"github.com/charmbracelet/lipgloss"
)

var warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

// Warn prints a highlighted warning line.
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warnStyle.Render("warning: "+fmt.Sprintf(format, args...)))
}

// WarnIfLarge warns when the estimated output exceeds limit bytes.
// A limit of zero or less disables the warning.
func WarnIfLarge(w io.Writer, lines, size *big.Int, limit int64) bool {
	if limit <= 0 || size.Cmp(big.NewInt(limit)) <= 0 {
		return false
	}
	Warn(w, "output will contain %s lines (%s); consider --short-list or --skip-characters",
		FormatCount(lines), FormatBytes(size))
	return true
}
