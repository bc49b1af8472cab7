//go:build !windows
// +build !windows

package output

import "os"

// enableANSI returns true on Unix-like systems; terminals there handle ANSI sequences
func enableANSI(_ *os.File) bool {
	return true
}
