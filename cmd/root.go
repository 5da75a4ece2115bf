package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps/internal/config"
	"github.com/Tiliavir/temps/internal/logging"
	"github.com/Tiliavir/temps/internal/storage"
	"github.com/Tiliavir/temps/internal/timecalc"
)

// now is replaced in tests.
var now = func() time.Time { return time.Now().Truncate(time.Second) }

var (
	tempsFile      string
	midnightOffset = clockValue(0)
	configPath     string
	verbose        bool
)

// State resolved by setup before any command runs.
var (
	cfg    config.Config
	cal    timecalc.Calendar
	store  *storage.Store
	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "temps",
	Short: "temps – a tiny file-based time tracker",
	Long: `temps records work against named projects in a single tab-separated
file and derives daily, weekly and full summaries and a textual timeline
from it. Without a subcommand it prints today's summary.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runSummary,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps user errors to 1 and broken input or I/O to 2.
func exitCode(err error) int {
	var (
		formatErr *storage.FormatError
		configErr *config.Error
		pathErr   *fs.PathError
		linkErr   *os.LinkError
	)
	switch {
	case errors.As(err, &formatErr), errors.As(err, &configErr),
		errors.As(err, &pathErr), errors.As(err, &linkErr):
		return 2
	default:
		return 1
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&tempsFile, "temps-file", "", "Tracking file (env "+config.EnvFile+", default "+config.DefaultFile+")")
	pf.Var(&midnightOffset, "midnight-offset", "Time at which a day ends, HH:MM (env "+config.EnvMidnightOffset+")")
	pf.StringVar(&configPath, "config", "", "Config file (env "+config.EnvConfig+")")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr (env "+logging.EnvDebug+")")

	addSummaryFlags(rootCmd)

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(vizCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogger(cmd *cobra.Command) {
	logger = logging.New(cmd.ErrOrStderr(), verbose || logging.DebugEnabled())
	slog.SetDefault(logger)
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

// setup resolves configuration with precedence defaults < file < environment
// < flags and prepares the calendar and store.
func setup(cmd *cobra.Command, _ []string) error {
	setupLogger(cmd)

	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("temps-file") {
		c.File = tempsFile
	}
	if flags.Changed("midnight-offset") {
		c.MidnightOffset = midnightOffset.Duration()
	}
	if err := c.Validate(); err != nil {
		return err
	}

	cal, err = c.Calendar()
	if err != nil {
		return &config.Error{Key: "midnight_offset", Value: c.MidnightOffset.String(), Err: err}
	}
	cfg = c
	store = storage.New(c.File, logger)
	logger.Debug("configuration resolved", "config", path, "file", c.File,
		"midnight_offset", c.MidnightOffset, "week_start", c.WeekStart)
	return nil
}
