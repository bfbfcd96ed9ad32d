//go:build darwin
// +build darwin

package logger

import (
	"os"

	"golang.org/x/sys/unix"
)

// GetTerminalInfo fills TerminalInfo.IsTTY/Width/Height from the file
// descriptor's termios/winsize ioctls, the same two syscalls PrintToStderr
// needs to decide whether a diagnostic gets a source-line snippet. Darwin's
// termios ioctl is TIOCGETA, not Linux's TCGETS, hence the separate file.
func GetTerminalInfo(file *os.File) (info TerminalInfo) {
	fd := file.Fd()

	if _, err := unix.IoctlGetTermios(int(fd), unix.TIOCGETA); err == nil {
		info.IsTTY = true
		info.UseColorEscapes = !hasNoColorEnvironmentVariable()

		if w, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ); err == nil {
			info.Width = int(w.Col)
			info.Height = int(w.Row)
		}
	}

	return
}
