package leetspeak

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"sync/atomic"
)

const (
	writeBufferSize = 64 * 1024
	// Lines written between context checks.
	cancelCheckInterval = 4096
)

// Progress counts what has been written so far. It is safe to read from
// another goroutine while a write is running.
type Progress struct {
	lines atomic.Uint64
	bytes atomic.Uint64
}

func (p *Progress) Lines() uint64 {
	return p.lines.Load()
}

func (p *Progress) Bytes() uint64 {
	return p.bytes.Load()
}

// Stats summarises a finished (or aborted) write.
type Stats struct {
	Lines uint64
	Bytes uint64
}

type stdoutSink struct {
	io.Writer
}

func (stdoutSink) Close() error { return nil }

// CreateSink opens path for writing, truncating any existing file.
// "-" writes to standard output, which is left open on Close.
func CreateSink(path string) (io.WriteCloser, error) {
	if path == "-" {
		return stdoutSink{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, &StageError{Stage: StageOpen, Path: path, Err: err}
	}
	return f, nil
}

// WriteLines writes every item of seq followed by a newline. It stops early
// when ctx is cancelled, after flushing the lines produced so far.
// progress may be nil.
func WriteLines(ctx context.Context, seq iter.Seq[string], w io.Writer, progress *Progress) (Stats, error) {
	if progress == nil {
		progress = &Progress{}
	}
	bw := bufio.NewWriterSize(w, writeBufferSize)
	var stats Stats

	for line := range seq {
		if stats.Lines%cancelCheckInterval == 0 && ctx.Err() != nil {
			if err := bw.Flush(); err != nil {
				return stats, &StageError{Stage: StageWrite, Err: err}
			}
			return stats, fmt.Errorf("%w after %d lines: %w", ErrInterrupted, stats.Lines, context.Cause(ctx))
		}
		if _, err := bw.WriteString(line); err != nil {
			return stats, &StageError{Stage: StageWrite, Err: err}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return stats, &StageError{Stage: StageWrite, Err: err}
		}
		n := uint64(len(line) + 1)
		stats.Lines++
		stats.Bytes += n
		progress.lines.Add(1)
		progress.bytes.Add(n)
	}

	if err := bw.Flush(); err != nil {
		return stats, &StageError{Stage: StageWrite, Err: err}
	}
	return stats, nil
}

// WriteFile streams the full expansion to path. The file is truncated first
// and closed on every exit path; a failed or interrupted run leaves the
// partial output in place.
func WriteFile(ctx context.Context, exp *Expansion, path string, progress *Progress) (stats Stats, err error) {
	sink, err := CreateSink(path)
	if err != nil {
		return Stats{}, err
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = &StageError{Stage: StageWrite, Path: path, Err: cerr}
		}
	}()

	stats, err = WriteLines(ctx, exp.All(), sink, progress)
	if se, ok := err.(*StageError); ok && se.Path == "" {
		se.Path = path
	}
	return stats, err
}
