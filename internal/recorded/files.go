package recorded

import (
	"fmt"
	"math"
	"os"
)

// GB is a decimal gigabyte.
const GB = 1000 * 1000 * 1000

// ToGB converts bytes to decimal gigabytes rounded to one decimal place.
func ToGB(bytes uint64) float64 {
	return math.Round(float64(bytes)/GB*10) / 10
}

// FileSize returns the size of path in bytes.
func FileSize(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// FileSizeGB returns the size of path in decimal gigabytes, one decimal place.
func FileSizeGB(path string) (float64, error) {
	n, err := FileSize(path)
	if err != nil {
		return 0, err
	}
	return ToGB(uint64(n)), nil
}

// removeFile is a test seam for os.Remove.
var removeFile = os.Remove

// DeleteAll removes paths in order. It stops at the first failure; files
// after it are left in place.
func DeleteAll(paths []string) error {
	for _, p := range paths {
		if err := removeFile(p); err != nil {
			return fmt.Errorf("delete %s: %w", p, err)
		}
	}
	return nil
}
