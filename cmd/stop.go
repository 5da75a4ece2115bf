package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps/internal/storage"
	"github.com/Tiliavir/temps/internal/timecalc"
)

var stopAt string

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running timer",
	Args:  cobra.NoArgs,
	RunE:  runStop,
}

func init() {
	stopCmd.Flags().StringVar(&stopAt, "at", "", "Stop time: RFC3339 or HH:MM[:SS] on the current day")
}

func runStop(cmd *cobra.Command, _ []string) error {
	t := now()
	end := t
	if stopAt != "" {
		e, err := timecalc.ParseStart(stopAt, t, cal)
		if err != nil {
			return err
		}
		if e.After(t) {
			return fmt.Errorf("stop time %s is in the future", e.Format(time.RFC3339))
		}
		end = e
	}

	return store.Update(func(l *storage.Log) error {
		e, err := l.Close(end)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Stopped '%s' after %s.\n",
			e.Project, timecalc.FormatDuration(e.EndOr(t).Sub(e.Start)))
		return nil
	})
}
