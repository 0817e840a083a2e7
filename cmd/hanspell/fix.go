package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Alfex4936/hanspell/hanspell"
	"github.com/Alfex4936/hanspell/internal/overlay"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] [file]",
	Short: "Apply the first suggestion of every typo",
	Long:  "Check the text, then replace every typo with its first suggestion. With --common only typos reported by more than one source are fixed.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("common", false, "fix only typos confirmed by several sources")
	fixCmd.Flags().BoolP("write", "w", false, "write the result back to the file instead of stdout")
}

func runFix(cmd *cobra.Command, args []string) error {
	common, err := cmd.Flags().GetBool("common")
	if err != nil {
		return err
	}
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	name, text, err := readInput(cmd, args)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}
	if write && name == "<stdin>" {
		return fmt.Errorf("fix: --write needs a file")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout())
	defer cancel()

	res, err := app.checker.Check(ctx, text, service())
	if err != nil {
		return err
	}
	printNotices(cmd.ErrOrStderr(), res)

	matches := hanspell.Locate(text, res.Typos)
	edits := hanspell.FixAll(matches)
	if common {
		edits = hanspell.FixCommon(matches)
	}
	fixed := hanspell.ApplyEdits(text, edits)

	if !write {
		_, err := fmt.Fprint(cmd.OutOrStdout(), fixed)
		return err
	}
	st, err := os.Stat(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(name, []byte(fixed), st.Mode().Perm()); err != nil {
		return fmt.Errorf("fix: %w", err)
	}
	// Only fixes that reached the file are logged.
	if app.checker.Overlay != nil {
		if err := recordHistory(app.checker.Overlay.History(), hanspell.HistoryLines(edits)); err != nil {
			app.logger.Warn("hanspell: history not written", "err", err)
		}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d개 고침\n", name, len(edits))
	return nil
}

func recordHistory(h *overlay.History, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	moved, err := h.BackupIfTooLarge()
	if err != nil {
		return err
	}
	if moved != "" {
		app.logger.Info("hanspell: history rotated", "to", moved)
	}
	return h.Write(lines...)
}
