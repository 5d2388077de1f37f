// Number Our Days
//
// Prints a one-page life calendar: ninety rows of fifty-two weeks, with
// the weeks already lived shaded and the expected end of life marked.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/numberourdays/numberourdays/internal/config"
	"github.com/numberourdays/numberourdays/internal/input"
	"github.com/numberourdays/numberourdays/internal/models"
	"github.com/numberourdays/numberourdays/internal/poster"
	"github.com/numberourdays/numberourdays/internal/services/calendar"
	"github.com/numberourdays/numberourdays/internal/tui"
	"github.com/numberourdays/numberourdays/internal/util"
)

// Build information (set via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// options holds the parsed command line.
type options struct {
	configPath  string
	outputDir   string
	theme       string
	debug       bool
	initConfig  bool
	showVersion bool
}

// streams are the process's standard files, swapped out in tests.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("numberourdays", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.outputDir, "out", "", "Directory to write the poster to (overrides config)")
	fs.StringVar(&opts.theme, "theme", "", "Poster theme: classic or sepia (overrides config)")
	fs.BoolVar(&opts.debug, "debug", false, "Use a built-in test profile and enable debug logging")
	fs.BoolVar(&opts.initConfig, "init-config", false, "Write the default configuration file and exit")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version and exit")
	err := fs.Parse(args)
	return opts, err
}

func main() {
	std := streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}

	opts, err := parseFlags(os.Args[1:], std.err)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, std, util.SystemClock{}); err != nil {
		printError(std.err, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, std streams, clock util.Clock) error {
	if opts.showVersion {
		fmt.Fprintf(std.out, "numberourdays version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	if opts.initConfig {
		path := config.ConfigPath(opts.configPath)
		if err := config.Save(config.Default(), path); err != nil {
			return fmt.Errorf("writing default config: %w", err)
		}
		fmt.Fprintf(std.out, "Wrote %s\n", path)
		return nil
	}

	cfg, cfgPath, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := applyOverrides(cfg, opts); err != nil {
		return err
	}

	runID := util.NewRunID()
	logger, closeLog, err := newLogger(cfg, opts.debug, std.err)
	if err != nil {
		return err
	}
	defer closeLog()
	logger = logger.With("run_id", runID)
	slog.SetDefault(logger)

	logger.Info("numberourdays starting",
		"version", Version,
		"config_path", cfgPath,
		"theme", cfg.Poster.Theme,
	)

	today := util.Today(clock)

	profile, err := collectProfile(ctx, opts, std, cfg, clock, logger)
	if err != nil {
		return err
	}

	params := calendar.DefaultParams()
	stats, err := computeStats(profile, params, today)
	if err != nil {
		return err
	}
	logger.Debug("stats computed",
		"gender", profile.Gender.String(),
		"birth_week_start", util.FormatDate(stats.BirthWeekStart),
		"expectancy_years", stats.ExpectancyYears,
		"expectancy_index", stats.ExpectancyIndex,
	)

	theme, err := poster.NewTheme(cfg.Poster.Theme)
	if err != nil {
		return err
	}
	renderer := poster.NewRenderer(poster.Options{
		Theme:  theme,
		Title:  cfg.Poster.Title,
		Params: params,
		Logger: logger,
	})

	if err := config.EnsureOutputDir(cfg); err != nil {
		return err
	}
	path := cfg.Poster.OutputPath(profile.FileStem())

	if err := renderer.RenderFile(path, poster.Poster{
		Profile: profile,
		Stats:   stats,
		Today:   today,
		RunID:   runID,
	}); err != nil {
		return err
	}

	success := lipgloss.NewRenderer(std.out).NewStyle().Foreground(lipgloss.Color("#5FD75F"))
	fmt.Fprintln(std.out, success.Render("Created "+path))
	return nil
}

// computeStats checks the grid parameters and the profile before deriving
// the poster statistics, so a bad table or profile never reaches the page.
func computeStats(profile models.UserProfile, params calendar.Params, today time.Time) (calendar.DerivedStats, error) {
	if err := params.Validate(); err != nil {
		return calendar.DerivedStats{}, fmt.Errorf("invalid grid parameters: %w", err)
	}
	if err := profile.Validate(today); err != nil {
		return calendar.DerivedStats{}, err
	}
	return calendar.Compute(profile, params), nil
}

// applyOverrides folds command line flags into cfg and revalidates it.
func applyOverrides(cfg *config.Config, opts options) error {
	if opts.outputDir != "" {
		cfg.Poster.OutputDir = opts.outputDir
	}
	if opts.theme != "" {
		cfg.Poster.Theme = config.ThemeName(opts.theme)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// newLogger builds the run's logger. Records go to the configured JSON
// log file, or as text to stderr.
func newLogger(cfg *config.Config, debug bool, stderr io.Writer) (*slog.Logger, func(), error) {
	logLevel := slog.LevelWarn
	if debug {
		logLevel = slog.LevelDebug
	} else {
		switch cfg.Logging.Level {
		case config.LogLevelDebug:
			logLevel = slog.LevelDebug
		case config.LogLevelInfo:
			logLevel = slog.LevelInfo
		case config.LogLevelError:
			logLevel = slog.LevelError
		}
	}

	logPath, err := config.EnsureLogDir(cfg)
	if err != nil {
		return nil, nil, err
	}

	if logPath == "" {
		handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel})
		return slog.New(handler), func() {}, nil
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	handler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler), func() { logFile.Close() }, nil
}

// collectProfile returns the debug profile or asks the user. A terminal
// on stdin gets the full-screen prompt; anything else is read line by line.
func collectProfile(ctx context.Context, opts options, std streams, cfg *config.Config, clock util.Clock, logger *slog.Logger) (models.UserProfile, error) {
	if opts.debug {
		today := util.Today(clock)
		profile := input.DebugProfile(today)
		input.LogDebugProfile(logger, profile, today)
		return profile, nil
	}

	var prompter input.Prompter
	if isTerminal(std.in) {
		prompter = tui.NewPrompter(cfg.Poster.Theme)
	} else {
		prompter = input.NewLinePrompter(std.in, std.out)
	}

	return input.NewCollector(prompter, clock, logger).Collect(ctx)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printError writes the single-line failure message.
func printError(w io.Writer, err error) {
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("#FF4444")).Bold(true)
	msg := strings.ReplaceAll(err.Error(), "\n", "; ")
	fmt.Fprintln(w, style.Render("Error: "+msg))
}
