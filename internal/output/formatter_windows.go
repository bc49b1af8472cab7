//go:build windows
// +build windows

package output

import (
	"os"
	"syscall"
	"unsafe"
)

// Windows API constant for enabling ANSI
const enableVirtualTerminalProcessing = 0x0004

var (
	kernel32           = syscall.NewLazyDLL("kernel32.dll")
	procGetConsoleMode = kernel32.NewProc("GetConsoleMode")
	procSetConsoleMode = kernel32.NewProc("SetConsoleMode")
)

// enableANSI enables ANSI escape sequence processing for f's console on Windows 10+
func enableANSI(f *os.File) bool {
	handle := f.Fd()
	if handle == 0 {
		return false
	}

	var mode uint32
	ret, _, _ := procGetConsoleMode.Call(handle, uintptr(unsafe.Pointer(&mode)))
	if ret == 0 {
		return false
	}

	mode |= enableVirtualTerminalProcessing
	ret, _, _ = procSetConsoleMode.Call(handle, uintptr(mode))
	return ret != 0
}
