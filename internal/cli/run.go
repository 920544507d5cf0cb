// Package cli hosts the logic behind the blockwalk commands, keeping cmd/
// thin and the command behavior testable with plain readers and writers.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/blockwalk/blockwalk"
	"github.com/blockwalk/blockwalk/internal/logging"
	"github.com/blockwalk/blockwalk/internal/presentation/tui"
)

// RunOptions configures a single interactive walkthrough session.
type RunOptions struct {
	Slug       string
	ConfigPath string
	// LogLevel selects the logger threshold ("debug", "info", "warn",
	// "error"); Debug forces it to debug.
	LogLevel string
	Headless bool
	// Plain disables markdown styling and colored frames.
	Plain bool
	Debug bool

	// Input and Output default to os.Stdin / os.Stdout.
	Input  io.Reader
	Output io.Writer
}

// RunSession walks one diagram interactively.
func RunSession(opts RunOptions) error {
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	level := logging.ParseLevel(opts.LogLevel)
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	engine, err := blockwalk.New(opts.Slug, blockwalk.WithLogger(logger))
	if err != nil {
		return err
	}

	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	runner := blockwalk.NewRunner()
	runner.Input = opts.Input
	runner.Output = opts.Output
	runner.Headless = opts.Headless
	runner.Params = cfg.ParamsFor(engine.Info().Slug)

	if !opts.Plain && !opts.Headless {
		tui.PrintBanner()
		width := 80
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
		runner.Renderer = tui.NewRenderer(width)
		runner.Frames = tui.NewFrameRenderer().Render
	}

	if err := runner.Run(engine); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}
	return nil
}
