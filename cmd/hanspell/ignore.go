package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ignoreCmd = &cobra.Command{
	Use:   "ignore <token>...",
	Short: "Never report these tokens again",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if app.checker.Overlay == nil {
			return fmt.Errorf("ignore: no ignore file configured")
		}
		for _, token := range args {
			if err := app.checker.Overlay.AppendIgnore(token); err != nil {
				return fmt.Errorf("ignore %q: %w", token, err)
			}
		}
		return nil
	},
}
