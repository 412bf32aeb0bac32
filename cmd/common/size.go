package common

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	KB int64 = 1 << (10 * (iota + 1))
	MB
	GB
	TB
)

var sizeUnits = map[string]int64{
	"":   1,
	"b":  1,
	"k":  KB,
	"kb": KB,
	"m":  MB,
	"mb": MB,
	"g":  GB,
	"gb": GB,
	"t":  TB,
	"tb": TB,
}

// ParseSize parses sizes like "100", "10m", "1.5 GB" into bytes.
func ParseSize(s string) (int64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	end := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if end == -1 {
		end = len(s)
	}
	if end == 0 {
		return 0, fmt.Errorf("invalid size %q: must start with a number", s)
	}

	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}

	unit := strings.TrimSpace(s[end:])
	multiplier, ok := sizeUnits[unit]
	if !ok {
		return 0, fmt.Errorf("invalid size %q: unknown unit %q", s, unit)
	}

	return int64(value * float64(multiplier)), nil
}
