package rainbow

import (
	"log/slog"

	"github.com/fxparticles/rainbow/colorspace"
)

// SetLogger configures the logger for rainbow and its sub-packages. By
// default nothing is logged. Pass nil to restore the silent default.
//
// Example:
//
//	rainbow.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) { colorspace.SetLogger(l) }

// Logger returns the current logger, it is never nil.
func Logger() *slog.Logger { return colorspace.Logger() }
