package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps/internal/storage"
	"github.com/Tiliavir/temps/internal/timecalc"
)

var startFrom string

var startCmd = &cobra.Command{
	Use:   "start [project]",
	Short: "Start tracking a project, stopping the running timer",
	Long: `Start tracking a project. A running timer is stopped first. Without a
project name the project of the most recent entry is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStart,
}

func init() {
	startCmd.Flags().StringVar(&startFrom, "from", "", "Start time: RFC3339 or HH:MM[:SS] on the current day")
}

func runStart(cmd *cobra.Command, args []string) error {
	t := now()
	start := t
	if startFrom != "" {
		s, err := timecalc.ParseStart(startFrom, t, cal)
		if err != nil {
			return err
		}
		if s.After(t) {
			return fmt.Errorf("start time %s is in the future", s.Format(time.RFC3339))
		}
		start = s
	}

	out := cmd.ErrOrStderr()
	return store.Update(func(l *storage.Log) error {
		closed, err := l.Close(t)
		switch {
		case err == nil:
			fmt.Fprintf(out, "Stopped '%s'.\n", closed.Project)
		case !errors.Is(err, storage.ErrNoOpenEntry):
			return err
		}

		var project string
		if len(args) == 1 {
			project = args[0]
		} else if last, ok := l.Last(); ok {
			project = last.Project
			logger.Debug("reusing project of last entry", "project", project)
		} else {
			return errors.New("cannot infer project name, please specify one")
		}

		e, err := l.Append(project, start)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Started '%s' at %s.\n", e.Project, clockLabel(e.Start, t))
		return nil
	})
}

// clockLabel prints t as a time of day, with the date when t is not on the
// same date as ref.
func clockLabel(t, ref time.Time) string {
	if timecalc.SameDay(t, ref) {
		return t.Format("15:04")
	}
	return t.Format("Mon Jan 02 15:04")
}
