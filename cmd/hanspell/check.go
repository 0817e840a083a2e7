package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alfex4936/hanspell/hanspell"
	"github.com/Alfex4936/hanspell/internal/util"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Print the typos found in a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("json", false, "print the full result as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	name, text, err := readInput(cmd, args)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout())
	defer cancel()

	res, err := app.checker.Check(ctx, text, service())
	if err != nil {
		return err
	}

	if asJSON {
		return util.WriteJSON(cmd.OutOrStdout(), hanspell.Summarize(text, res), true)
	}
	printNotices(cmd.ErrOrStderr(), res)
	matches := hanspell.Locate(text, res.Typos)
	renderMatches(cmd.OutOrStdout(), name, text, matches)
	fmt.Fprintln(cmd.ErrOrStderr(), summaryLine(len(matches), res))
	return nil
}
