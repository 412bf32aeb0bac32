package leetspeak

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned for invalid arguments, before any output is opened.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrSinkOpen is returned when the output cannot be created or truncated.
	ErrSinkOpen = errors.New("cannot open output")

	// ErrSinkWrite is returned when writing or closing the output fails mid-stream.
	ErrSinkWrite = errors.New("cannot write output")

	// ErrInterrupted is returned when the context is cancelled during a run.
	// The output holds every line produced so far.
	ErrInterrupted = errors.New("interrupted")
)

// Stage names the part of a run that failed.
type Stage string

const (
	StageConfig    Stage = "configuration"
	StagePreflight Stage = "preflight"
	StageOpen      Stage = "open"
	StageWrite     Stage = "write"
)

// StageError ties a failure to its stage and output path.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s failed for '%s': %v", e.Stage, e.Path, e.Err)
}

// Unwrap exposes both the stage sentinel and the underlying cause.
func (e *StageError) Unwrap() []error {
	if sentinel := e.Stage.sentinel(); sentinel != nil {
		return []error{sentinel, e.Err}
	}
	return []error{e.Err}
}

func (s Stage) sentinel() error {
	switch s {
	case StageConfig:
		return ErrConfiguration
	case StageOpen:
		return ErrSinkOpen
	case StageWrite:
		return ErrSinkWrite
	default:
		return nil
	}
}

// StageOf reports the stage of the first StageError in err's chain.
func StageOf(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
