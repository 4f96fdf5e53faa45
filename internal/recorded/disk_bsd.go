//go:build darwin || freebsd

package recorded

import (
	"os"

	"golang.org/x/sys/unix"
)

// diskFree returns the bytes available to unprivileged users on the
// filesystem holding path. Bsize is the fragment size on these systems.
func diskFree(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, &os.PathError{Op: "statfs", Path: path, Err: err}
	}
	return uint64(st.Bavail) * uint64(st.Bsize), nil
}
