package cmd

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/temps/internal/config"
	"github.com/Tiliavir/temps/internal/logging"
	"github.com/Tiliavir/temps/internal/model"
	"github.com/Tiliavir/temps/internal/storage"
)

var fixedNow = time.Date(2026, 2, 27, 15, 0, 0, 0, time.Local)

func clock(h, m int) time.Time {
	return time.Date(2026, 2, 27, h, m, 0, 0, time.Local)
}

func closed(project string, start, end time.Time) model.Entry {
	return model.Entry{Project: project, Start: start, End: &end}
}

// testEnv points the commands at a fresh tracking file and a missing config
// file, and freezes the clock at fixedNow.
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	file := filepath.Join(dir, "temps.tsv")
	t.Setenv(config.EnvConfig, filepath.Join(dir, "config.yaml"))
	t.Setenv(config.EnvFile, file)
	t.Setenv(config.EnvMidnightOffset, "")
	t.Setenv(config.EnvWeekStart, "")
	t.Setenv(logging.EnvDebug, "")
	setNow(t, fixedNow)
	return file
}

func setNow(t *testing.T, ts time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = prev })
}

func seed(t *testing.T, file string, entries ...model.Entry) {
	t.Helper()
	require.NoError(t, storage.New(file, nil).Save(storage.NewLog(entries...)))
}

func load(t *testing.T, file string) *storage.Log {
	t.Helper()
	l, err := storage.New(file, nil).Load()
	require.NoError(t, err)
	return l
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the root command and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}
