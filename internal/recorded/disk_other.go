//go:build !(linux || darwin || freebsd || windows)

package recorded

import (
	"errors"
	"os"
)

func diskFree(path string) (uint64, error) {
	return 0, &os.PathError{Op: "statfs", Path: path, Err: errors.ErrUnsupported}
}
