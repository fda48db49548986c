// Package controller provides output adapters for displaying repair-pattern results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "repattern.dev/pkg/repattern/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeDetect StartMode = iota
	ModeView
	ModeList
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// Mode returns the configured mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// NewStartConfig applies options over the detect-mode default.
func NewStartConfig(options ...StartOption) StartConfig {
	config := StartConfig{mode: ModeDetect}
	for _, option := range options {
		option(&config)
	}

	return config
}

// WithDetectMode sets the UI to detection mode.
func WithDetectMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeDetect
	}
}

// WithViewMode sets the UI to report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithListMode sets the UI to family listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// UI displays detection progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayConcurrencyInfo(ctx context.Context, changeSets int, threads int, shardIndex int, shardCount int)
	DisplayChangeSetResult(ctx context.Context, report m.ChangeSetReport)
	DisplaySkipped(ctx context.Context, path m.Path, err error)
	DisplaySummary(ctx context.Context, summary m.Summary) error
	DisplayFamilies(ctx context.Context, families map[m.Family][]m.PatternName) error
	DisplayReports(ctx context.Context, reports []m.ChangeSetReport, summary m.Summary) error
}

// NewUI picks the interactive TUI when output is a terminal and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
