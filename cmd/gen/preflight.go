package gen

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/gigurra/leetkit/cmd/common"
	"github.com/shirou/gopsutil/v3/disk"
	"go.uber.org/zap"
)

var ErrInsufficientSpace = errors.New("not enough free disk space")

type freeSpaceFunc func(dir string) (uint64, error)

var freeSpace freeSpaceFunc = func(dir string) (uint64, error) {
	usage, err := disk.Usage(dir)
	if err != nil {
		return 0, err
	}
	return usage.Free, nil
}

// checkFreeSpace returns ErrInsufficientSpace when the estimated output does
// not fit on the target filesystem. Space held by a file that is about to be
// truncated counts as free. If free space cannot be determined the check is
// skipped; opening the output reports the real problem.
func checkFreeSpace(path string, need *big.Int, free freeSpaceFunc, logger *zap.Logger) error {
	dir := filepath.Dir(path)
	avail, err := free(dir)
	if err != nil {
		logger.Debug("free space check skipped", zap.String("dir", dir), zap.Error(err))
		return nil
	}

	have := new(big.Int).SetUint64(avail)
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		have.Add(have, big.NewInt(info.Size()))
	}

	logger.Debug("free space",
		zap.String("dir", dir),
		zap.String("available", have.String()),
		zap.String("needed", need.String()),
	)

	if need.Cmp(have) > 0 {
		return fmt.Errorf("%w: need %s, %s available",
			ErrInsufficientSpace, common.FormatBytes(need), common.FormatBytes(have))
	}
	return nil
}
