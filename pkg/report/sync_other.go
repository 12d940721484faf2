//go:build !linux
// +build !linux

package report

import "os"

func syncFile(f *os.File) error {
	return f.Sync()
}
