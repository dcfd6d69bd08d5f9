//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

func terminal_width(f *os.File) int {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return default_terminal_width
	}
	return int(ws.Col)
}
