package common

import (
	"errors"
	"fmt"
	"io"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/leetkit/internal/leetspeak"
)

const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitInterrupted = 130
)

func DefaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, leetspeak.ErrInterrupted):
		return ExitInterrupted
	case errors.Is(err, leetspeak.ErrConfiguration):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// ReportError prints err as "tool: message" and returns the matching exit code.
func ReportError(stderr io.Writer, tool string, err error) int {
	if err == nil {
		return ExitOK
	}
	fmt.Fprintf(stderr, "%s: %v\n", tool, err)
	return ExitCode(err)
}

// ConfigError wraps a bad argument as a configuration-stage failure.
func ConfigError(format string, args ...any) error {
	return &leetspeak.StageError{Stage: leetspeak.StageConfig, Err: fmt.Errorf(format, args...)}
}
