package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps/internal/storage"
)

// runEditor is replaced in tests.
var runEditor = func(c *exec.Cmd) error { return c.Run() }

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the tracking file in $VISUAL or $EDITOR",
	Args:  cobra.NoArgs,
	RunE:  runEdit,
}

func editorCommand() ([]string, error) {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(key)); len(fields) > 0 {
			return fields, nil
		}
	}
	return nil, errors.New("no editor configured, set the $EDITOR environment variable")
}

func runEdit(cmd *cobra.Command, _ []string) error {
	argv, err := editorCommand()
	if err != nil {
		return err
	}

	if _, err := os.Stat(store.Path()); errors.Is(err, os.ErrNotExist) {
		if err := store.Save(storage.NewLog()); err != nil {
			return err
		}
	}

	c := exec.Command(argv[0], append(argv[1:], store.Path())...)
	c.Stdin = os.Stdin
	c.Stdout = cmd.OutOrStdout()
	c.Stderr = cmd.ErrOrStderr()
	logger.Debug("running editor", "argv", c.Args)
	if err := runEditor(c); err != nil {
		return fmt.Errorf("running editor %q: %w", argv[0], err)
	}

	// Catch mistakes while they are fresh.
	if _, err := store.Load(); err != nil {
		return fmt.Errorf("tracking file is no longer valid, run `temps edit` again to fix it: %w", err)
	}
	return nil
}
