//go:build !darwin && !linux && !windows
// +build !darwin,!linux,!windows

package logger

import "os"

// GetTerminalInfo reports no terminal capabilities on platforms this repo
// has no ioctl/syscall binding for; PrintToStderr then always omits the
// source-line snippet and behaves as if output were redirected to a file.
func GetTerminalInfo(*os.File) TerminalInfo {
	return TerminalInfo{}
}
