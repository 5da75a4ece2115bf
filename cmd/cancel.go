package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps/internal/storage"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the running timer",
	Args:  cobra.NoArgs,
	RunE:  runCancel,
}

func runCancel(cmd *cobra.Command, _ []string) error {
	return store.Update(func(l *storage.Log) error {
		e, err := l.Cancel()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Cancelled '%s' (started at %s).\n",
			e.Project, e.Start.Format(time.RFC3339))
		return nil
	})
}
