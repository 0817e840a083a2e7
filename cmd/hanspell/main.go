// Command hanspell checks Korean text with the 부산대 and DAUM spell
// checkers and the user's local typo files.
//
// Usage:
//
//	echo "너는나와 ..." | hanspell check
//	hanspell check -s daum README.md
//	hanspell fix --common --write README.md
//	hanspell ignore 톨스또이
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/Alfex4936/hanspell/hanspell"
	"github.com/Alfex4936/hanspell/internal/config"
	"github.com/Alfex4936/hanspell/internal/model"
)

// app is what PersistentPreRunE sets up for the subcommands.
var app struct {
	cfg     *config.Config
	checker *hanspell.Checker
	logger  *slog.Logger
}

var rootCmd = &cobra.Command{
	Use:               "hanspell",
	Short:             "한국어 맞춤법 검사기",
	Long:              "hanspell sends text to the 부산대 and DAUM spell checkers, merges their reports with your local typo files and prints or applies the fixes.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(ignoreCmd)

	defaultTimeout, _ := strconv.Atoi(config.EnvOr("HANSPELL_TIMEOUT", "0"))
	rootCmd.PersistentFlags().String("config", config.EnvOr("HANSPELL_CONFIG", ""), "config file (default ~/.hanspell.toml)")
	rootCmd.PersistentFlags().StringP("service", "s", config.EnvOr("HANSPELL_SERVICE", ""), "pnu | daum | all (default from config)")
	rootCmd.PersistentFlags().Int("timeout", defaultTimeout, "per-service timeout in seconds (default from config)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colors")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()

	level := slog.LevelWarn
	if v, _ := flags.GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	app.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(app.logger)

	if nc, _ := flags.GetBool("no-color"); nc {
		color.NoColor = true
	}

	path, _ := flags.GetString("config")
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if s, _ := flags.GetString("service"); s != "" {
		cfg.Service = s
	}
	if t, _ := flags.GetInt("timeout"); t > 0 {
		cfg.TimeoutSeconds = t
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	app.cfg = cfg

	app.checker, err = hanspell.NewChecker(cfg, app.logger)
	return err
}

// readInput returns the NFC text of the file argument, or of stdin.
func readInput(cmd *cobra.Command, args []string) (name, text string, err error) {
	var data []byte
	if len(args) == 0 || args[0] == "-" {
		name = "<stdin>"
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		name = args[0]
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", "", err
	}
	return name, norm.NFC.String(string(data)), nil
}

// checkTimeout bounds a whole check: every service gets its own deadline,
// so twice that is plenty.
func checkTimeout() time.Duration {
	return 2 * app.cfg.Timeout()
}

func printNotices(w io.Writer, res *hanspell.CheckResult) {
	for _, n := range res.Notices {
		fmt.Fprintln(w, color.YellowString("notice:"), n)
	}
	if res.Partial() {
		fmt.Fprintln(w, color.YellowString("warning:"), res.Message())
	}
}

func service() model.Service { return app.cfg.ServiceValue() }
