//go:build linux

package recorded

import (
	"os"

	"golang.org/x/sys/unix"
)

// diskFree returns the bytes available to unprivileged users on the
// filesystem holding path.
func diskFree(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, &os.PathError{Op: "statfs", Path: path, Err: err}
	}
	return availBytes(&st), nil
}

// availBytes counts available blocks in fragment-size units, as df does.
// Bsize is only the preferred I/O size and differs on NFS and FUSE mounts.
func availBytes(st *unix.Statfs_t) uint64 {
	return uint64(st.Bavail) * uint64(st.Frsize)
}
