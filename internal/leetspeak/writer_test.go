package leetspeak

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_SingleLetter(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")

	stats, err := WriteFile(context.Background(), Resolve("e", nil, Full), out, nil)
	require.NoError(t, err)
	assert.Equal(t, Stats{Lines: 3, Bytes: 6}, stats)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "E\ne\n3\n", string(data))
}

func TestWriteFile_EmptyInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")

	_, err := WriteFile(context.Background(), Resolve("", nil, Full), out, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "\n", string(data))
}

func TestWriteFile_TruncatesExisting(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(out, []byte(strings.Repeat("old content\n", 100)), 0644))

	_, err := WriteFile(context.Background(), Resolve("e", nil, Full), out, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "E\ne\n3\n", string(data))
}

func TestWriteFile_HelloMatchesEstimate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "hello.txt")
	exp := Resolve("hello", nil, Full)
	progress := &Progress{}

	stats, err := WriteFile(context.Background(), exp, out, progress)
	require.NoError(t, err)
	assert.Equal(t, uint64(12852), stats.Lines)
	assert.Equal(t, stats.Lines, progress.Lines())
	assert.Equal(t, stats.Bytes, progress.Bytes())

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, exp.OutputBytes().Int64(), info.Size())
	assert.Equal(t, exp.OutputBytes().Uint64(), stats.Bytes)
}

func TestWriteFile_Deterministic(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")

	for _, path := range []string{first, second} {
		_, err := WriteFile(context.Background(), Resolve("Leet 1", NewSkipSet("t"), Reduced), path, nil)
		require.NoError(t, err)
	}

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "does", "not", "exist.txt")

	_, err := WriteFile(context.Background(), Resolve("hello", nil, Full), out, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSinkOpen))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	stage, ok := StageOf(err)
	require.True(t, ok)
	assert.Equal(t, StageOpen, stage)

	_, statErr := os.Stat(out)
	assert.True(t, errors.Is(statErr, fs.ErrNotExist))
}

func TestWriteFile_CancelledBeforeStart(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := WriteFile(ctx, Resolve("hello", nil, Full), out, nil)
	assert.True(t, errors.Is(err, ErrInterrupted))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, stats.Lines)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteLines_InterruptLeavesCompletePrefix(t *testing.T) {
	exp := Resolve("hello", nil, Full)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	yielded := 0
	seq := func(yield func(string) bool) {
		for line := range exp.All() {
			yielded++
			if yielded == 5000 {
				cancel()
			}
			if !yield(line) {
				return
			}
		}
	}

	var buf bytes.Buffer
	stats, err := WriteLines(ctx, seq, &buf, nil)
	require.True(t, errors.Is(err, ErrInterrupted))
	assert.Equal(t, uint64(2*cancelCheckInterval), stats.Lines)

	want := slices.Collect(exp.All())[:stats.Lines]
	assert.Equal(t, strings.Join(want, "\n")+"\n", buf.String())
}

type failingWriter struct {
	limit   int
	written int
}

var errDiskFull = errors.New("no space left on device")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.limit {
		n := w.limit - w.written
		w.written = w.limit
		return n, errDiskFull
	}
	w.written += len(p)
	return len(p), nil
}

func TestWriteLines_WriteFailure(t *testing.T) {
	exp := Resolve("hello", nil, Full)

	_, err := WriteLines(context.Background(), exp.All(), &failingWriter{limit: 1000}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSinkWrite))
	assert.True(t, errors.Is(err, errDiskFull))
	assert.Contains(t, err.Error(), "write failed")
}

func TestStageError_Message(t *testing.T) {
	err := &StageError{Stage: StageOpen, Path: "/x/y.txt", Err: fs.ErrPermission}
	assert.Equal(t, "open failed for '/x/y.txt': permission denied", err.Error())
	assert.True(t, errors.Is(err, ErrSinkOpen))
	assert.False(t, errors.Is(err, ErrSinkWrite))

	err = &StageError{Stage: StagePreflight, Err: errDiskFull}
	assert.Equal(t, "preflight failed: no space left on device", err.Error())
	assert.True(t, errors.Is(err, errDiskFull))
}
