// Package logger builds the per-component loggers used across the service.
package logger

import (
	"errors"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const timeFormat = "15:04:05.00"

var ErrNilWriter = errors.New("log writer is nil")

// New creates a logger whose lines are prefixed with name drawn in color.
func New(name string, color lipgloss.Color, w io.Writer) (*log.Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Prefix:          name,
		Level:           log.InfoLevel,
	})

	styles := log.DefaultStyles()
	styles.Prefix = lipgloss.NewStyle().Bold(true).Foreground(color)
	l.SetStyles(styles)

	return l, nil
}

// SetVerbose switches l between info and debug level.
func SetVerbose(l *log.Logger, verbose bool) {
	if verbose {
		l.SetLevel(log.DebugLevel)
		return
	}
	l.SetLevel(log.InfoLevel)
}
