package gen

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"time"

	"github.com/gigurra/leetkit/cmd/common"
	"github.com/gigurra/leetkit/internal/leetspeak"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

const progressInterval = 250 * time.Millisecond

// validProgressMode guards callers of Run and Generate; the command line
// already restricts --progress through its alts tag.
func validProgressMode(mode string) bool {
	switch mode {
	case "auto", "always", "never":
		return true
	}
	return false
}

func progressEnabled(mode string, stderr io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := stderr.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// progressReporter redraws a single status line until stopped.
type progressReporter struct {
	w        io.Writer
	progress *leetspeak.Progress
	total    *big.Int
	stop     chan struct{}
	group    errgroup.Group
}

func startProgress(w io.Writer, progress *leetspeak.Progress, total *big.Int, interval time.Duration) *progressReporter {
	r := &progressReporter{
		w:        w,
		progress: progress,
		total:    total,
		stop:     make(chan struct{}),
	}
	r.group.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-r.stop:
				r.render()
				fmt.Fprintln(r.w)
				return nil
			case <-ticker.C:
				r.render()
			}
		}
	})
	return r
}

// Stop draws the final state and waits for the reporter goroutine to exit.
func (r *progressReporter) Stop() {
	close(r.stop)
	_ = r.group.Wait()
}

func (r *progressReporter) render() {
	lines := r.progress.Lines()
	fmt.Fprintf(r.w, "\r%s / %s lines (%.1f%%), %s written\033[K",
		common.FormatUint(lines),
		common.FormatCount(r.total),
		common.Percent(lines, r.total),
		common.FormatSize(r.progress.Bytes()),
	)
}
