//go:build !linux && !freebsd

package writer

import "os"

// syncFile flushes file contents to stable storage.
func syncFile(f *os.File) error {
	return f.Sync()
}
