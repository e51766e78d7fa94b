package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/promptline"
	"github.com/fwojciec/promptline/env"
	"github.com/fwojciec/promptline/git"
	"github.com/fwojciec/promptline/lipgloss"
	"github.com/fwojciec/promptline/shell"
	"github.com/fwojciec/promptline/termenv"
	termenvlib "github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// App encapsulates the application logic for testing.
type App struct {
	Probes  []promptline.Probe
	Escape  promptline.Escaper
	Profile termenvlib.Profile
	Stdout  io.Writer
	Logger  *zap.Logger
}

// Run evaluates every probe in order and writes the prompt line. Failed
// probes are logged at debug level and left out of the line.
func (a *App) Run(ctx context.Context) error {
	logger := a.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var segments []string
	for _, p := range a.Probes {
		text, err := p.Probe(ctx)
		if err != nil {
			logger.Debug("probe failed",
				zap.String("probe", p.Name()),
				zap.Error(err),
				zap.Strings("causes", promptline.Causes(err)))
			continue
		}
		segments = append(segments, termenv.Adapt(text, a.Profile).Render(a.Escape))
	}

	_, err := io.WriteString(a.Stdout, promptline.Line(segments))
	return err
}

// Probes returns the prompt probes in display order.
func Probes(theme promptline.Theme, status string) []promptline.Probe {
	palette := theme.Palette()
	return []promptline.Probe{
		env.NewUserProbe(palette.User),
		env.NewHostProbe(palette.Host),
		shell.NewProbe(palette.Shell),
		env.NewDirProbe(palette.Dir),
		git.NewProbe(git.NewResolver(), palette.Repo),
		env.NewNixProbe(palette.Sandbox),
		env.NewStatusProbe(status, palette.Status),
	}
}

// Config holds command-line settings. Every flag defaults from an
// environment variable.
type Config struct {
	Shell  string
	Status string
	Colors string
	Theme  string
	Debug  bool
}

// NewLogger returns a console logger writing debug entries to w, or a no-op
// logger when debug is off.
func NewLogger(debug bool, w io.Writer) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

// NewRootCmd creates the promptline command. Diagnostics go to stderr.
func NewRootCmd(stderr io.Writer) *cobra.Command {
	var cfg Config

	cmd := &cobra.Command{
		Use:   "promptline",
		Short: "Print a colorized shell prompt line",
		Long: `promptline prints user, host, shell, working directory, git ref,
nix shell and last exit status as one colorized line for PS1/PROMPT.

Segments that cannot be determined are left out. Set DEBUG_PROMPT=1 to
see why.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := termenv.Profile(cfg.Colors)
			if err != nil {
				return err
			}
			theme, err := lipgloss.ThemeByName(cfg.Theme)
			if err != nil {
				return err
			}

			logger := NewLogger(cfg.Debug, stderr)
			defer func() { _ = logger.Sync() }()

			app := &App{
				Probes:  Probes(theme, cfg.Status),
				Escape:  shell.Escaper(cfg.Shell),
				Profile: profile,
				Stdout:  cmd.OutOrStdout(),
				Logger:  logger,
			}
			return app.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Shell, "shell", os.Getenv("PROMPT_SHELL"), "escape sequences for this shell: bash, zsh, readline (env PROMPT_SHELL)")
	flags.StringVar(&cfg.Status, "status", os.Getenv("PROMPT_STATUS"), "exit status of the previous command (env PROMPT_STATUS)")
	flags.StringVar(&cfg.Colors, "colors", os.Getenv("PROMPT_COLORS"), "color profile: truecolor, 256, 16, none (env PROMPT_COLORS)")
	flags.StringVar(&cfg.Theme, "theme", os.Getenv("PROMPT_THEME"), "theme: default, mocha, latte (env PROMPT_THEME)")
	flags.BoolVar(&cfg.Debug, "debug", os.Getenv("DEBUG_PROMPT") == "1", "print probe failures to stderr (env DEBUG_PROMPT=1)")

	return cmd
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCmd(os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
