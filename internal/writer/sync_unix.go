//go:build linux || freebsd

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file contents to stable storage. A data-only sync is
// enough here; the rename that follows carries the metadata update.
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
