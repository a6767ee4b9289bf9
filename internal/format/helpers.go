package format

import (
	"fmt"
	"strings"
)

// FmtBits formats an information quantity with a fixed precision and unit.
func FmtBits(v float64) string {
	return fmt.Sprintf("%.6f bits", v)
}

// FmtOutcome joins outcome symbols for display. Single-character symbols
// concatenate ("011"); longer ones are comma-separated.
func FmtOutcome(symbols []string) string {
	for _, s := range symbols {
		if len(s) != 1 {
			return strings.Join(symbols, ",")
		}
	}
	return strings.Join(symbols, "")
}

// FmtBlock renders a set of outcome strings as "{00, 11}".
func FmtBlock(members []string) string {
	return "{" + strings.Join(members, ", ") + "}"
}
