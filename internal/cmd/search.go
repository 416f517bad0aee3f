package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/sf/internal/config"
	"github.com/harrison/sf/internal/display"
	"github.com/harrison/sf/internal/logger"
	"github.com/harrison/sf/internal/models"
	"github.com/harrison/sf/internal/search"
	"github.com/spf13/cobra"
)

// statusLine is a status reporter that can clear itself around other output.
type statusLine interface {
	display.StatusReporter
	display.Pauser
}

func addSearchFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolP("file", "f", false, "Search only in file names for the pattern")
	flags.BoolP("dir", "d", false, "Search only in directory names for the pattern")
	flags.StringSliceP("extension", "e", nil, "Only report files with the given extensions (repeatable, comma-separated)")
	flags.StringSliceP("exclude", "E", nil, "Skip names containing any of these patterns (repeatable)")
	flags.StringSliceP("include", "i", nil, "Additional patterns to search for (repeatable)")
	flags.BoolP("count", "c", false, "Only print the number of matches")
	flags.BoolP("stats", "s", false, "Show the number of matches, searched entries and elapsed time at the end")
	flags.BoolP("performance", "p", false, "Disable everything that slows down the search (spinner, colors)")
	flags.BoolP("hidden", "H", false, "Include hidden files and directories")
	flags.Bool("prune-hidden", false, "Skip the contents of hidden directories (default)")
	flags.Bool("no-prune-hidden", false, "Search inside hidden directories without reporting them")
	flags.BoolP("case-sensitive", "C", false, "Match names case-sensitively")
	flags.Int("max-depth", models.DefaultMaxDepth, "Deepest directory level to descend into")

	cmd.MarkFlagsMutuallyExclusive("file", "dir")
	cmd.MarkFlagsMutuallyExclusive("prune-hidden", "no-prune-hidden")
}

// loadConfig loads the config file named by --config, or the default one in
// the sf config directory, and merges the CLI flags into it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		cfg, err = config.LoadConfig(defaultPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	cfg.MergeWithFlags(flagOverrides(cmd))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// flagOverrides collects the flags that were given explicitly.
func flagOverrides(cmd *cobra.Command) config.FlagOverrides {
	var o config.FlagOverrides
	flags := cmd.Flags()

	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		o.LogLevel = &v
	}
	if flags.Changed("max-depth") {
		v, _ := flags.GetInt("max-depth")
		o.MaxDepth = &v
	}
	if flags.Changed("hidden") {
		v, _ := flags.GetBool("hidden")
		o.ShowHidden = &v
	}
	if flags.Changed("prune-hidden") {
		v, _ := flags.GetBool("prune-hidden")
		o.PruneHiddenDirs = &v
	} else if flags.Changed("no-prune-hidden") {
		v, _ := flags.GetBool("no-prune-hidden")
		v = !v
		o.PruneHiddenDirs = &v
	}
	if flags.Changed("case-sensitive") {
		v, _ := flags.GetBool("case-sensitive")
		o.CaseSensitive = &v
	}
	if flags.Changed("performance") {
		v, _ := flags.GetBool("performance")
		o.Performance = &v
	}
	return o
}

// buildRequest turns the positional arguments, the search flags and the
// merged configuration into a validated search request.
func buildRequest(cmd *cobra.Command, args []string, cfg *config.Config) (models.SearchRequest, error) {
	flags := cmd.Flags()
	req := models.NewSearchRequest(args[0], args[1])

	include, _ := flags.GetStringSlice("include")
	req.Include = append(req.Include, include...)
	req.Exclude, _ = flags.GetStringSlice("exclude")

	extensions, _ := flags.GetStringSlice("extension")
	for _, ext := range extensions {
		req.Extensions = append(req.Extensions, strings.TrimPrefix(ext, "."))
	}

	fileOnly, _ := flags.GetBool("file")
	dirOnly, _ := flags.GetBool("dir")
	switch {
	case fileOnly && dirOnly:
		return req, fmt.Errorf("%w: --file and --dir cannot be used together", models.ErrInvalidRequest)
	case fileOnly:
		req.Kind = models.KindFilesOnly
	case dirOnly:
		req.Kind = models.KindDirsOnly
	}

	count, _ := flags.GetBool("count")
	stats, _ := flags.GetBool("stats")
	switch {
	case count && stats:
		req.Mode = models.ModeSilentStats
	case count:
		req.Mode = models.ModeCountOnly
	default:
		req.Stats = stats
	}

	req.CaseSensitive = cfg.CaseSensitive
	req.ShowHidden = cfg.ShowHidden
	req.HiddenPrunesSubtree = cfg.PruneHiddenDirs
	req.MaxDepth = cfg.MaxDepth

	if err := req.Validate(); err != nil {
		return req, err
	}
	return req, nil
}

// runSearch implements the root command
func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	req, err := buildRequest(cmd, args, cfg)
	if err != nil {
		return err
	}

	engine, err := search.New(req)
	if err != nil {
		return fmt.Errorf("invalid search: %w", err)
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	useColor := cfg.Color && !cfg.Performance && !color.NoColor && isTerminal(out)

	var status statusLine = display.NoopStatus{}
	if showProgress(cfg.Performance, isTerminal(errOut)) {
		status = display.NewSpinner(errOut, "searching", display.SpinnerOptions{Color: useColor})
	}
	defer status.Stop()

	console := logger.NewConsoleLogger(errOut, cfg.LogLevel).WithPauser(status.Pause)
	if cfg.Performance || !cfg.Color {
		console.WithColor(false)
	}
	pattern := strings.Join(req.Include, ", ")
	log, closeLog := openLog(console, cfg.LogLevel, pattern, req.Root)
	defer closeLog()

	stopInterrupt := watchInterrupt(interruptSignals(), out, status, useColor, osExit)
	defer stopInterrupt()

	engine.WithStatus(status).WithWarningHandler(func(w models.Warning) {
		logWarning(log, pattern, w)
	})

	var sink search.Sink = display.CountSink{}
	if req.Mode.StreamsMatches() {
		sink = display.NewPrintSink(out, engine.Matcher(), display.PrintOptions{
			Color:  useColor,
			Pauser: status,
		})
	}

	log.LogDebug(fmt.Sprintf("searching %q in %s (kind: %s, mode: %s, max depth: %d)",
		pattern, req.Root, req.Kind, req.Mode, req.MaxDepth))

	summary, err := engine.Run(searchContext(cmd), sink)
	status.Stop()
	if err != nil {
		if errors.Is(err, search.ErrRootUnresolvable) {
			return fmt.Errorf("cannot search %s: %w", req.Root, err)
		}
		return err
	}

	log.LogDebug(fmt.Sprintf("visited %d entries, found %d matches in %s",
		summary.Visited, summary.Matches, display.FormatDuration(summary.Elapsed)))

	if !req.WantsSummary() {
		return nil
	}
	return display.WriteSummary(out, summary, display.SummaryOptions{
		Full:     req.FullSummary(),
		Color:    useColor,
		Separate: req.Mode == models.ModeVerbose,
	})
}

// openLog returns console fanned out to the sf.log file logger and writes the
// run header. When the log file cannot be opened the console logger is used
// alone.
func openLog(console *logger.ConsoleLogger, level, pattern, root string) (logger.Logger, func()) {
	logPath, err := config.LogPath()
	if err != nil {
		console.LogWarn(fmt.Sprintf("Unable to find or create a config directory: %v", err))
		return console, func() {}
	}

	fileLog, err := logger.NewFileLogger(logPath, level)
	if err != nil {
		console.LogWarn(fmt.Sprintf("Unable to open log file: %v", err))
		return console, func() {}
	}
	fileLog.LogRunStart(pattern, root)
	return logger.NewMultiLogger(console, fileLog), func() { fileLog.Close() }
}

// logWarning reports a per-directory failure with the message for its class.
func logWarning(log logger.Logger, pattern string, w models.Warning) {
	switch w.Class {
	case models.ClassNotFound:
		log.LogWarn(fmt.Sprintf("'%s' not found: %v", w.Path, w.Err))
	case models.ClassPermissionDenied:
		log.LogWarn(fmt.Sprintf("You don't have access to a source in '%s': %v", w.Path, w.Err))
	default:
		log.LogError(fmt.Sprintf("Error while scanning entries for %s in '%s': %v", pattern, w.Path, w.Err))
	}
}

func searchContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// isTerminal reports whether w is a terminal stream.
// showProgress reports whether the spinner runs. Every output mode gets it,
// performance mode and redirected stderr do not.
func showProgress(performance, stderrTTY bool) bool {
	return !performance && stderrTTY
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && display.IsTerminal(f)
}
