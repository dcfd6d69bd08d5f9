//go:build !unix

package main

import (
	"os"
)

func terminal_width(f *os.File) int {
	return default_terminal_width
}
