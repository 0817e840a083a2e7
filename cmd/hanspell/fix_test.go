package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alfex4936/hanspell/hanspell"
	"github.com/Alfex4936/hanspell/internal/config"
	"github.com/Alfex4936/hanspell/internal/model"
	"github.com/Alfex4936/hanspell/internal/overlay"
	"github.com/Alfex4936/hanspell/internal/speller"
)

type oneTypo struct{}

func (oneTypo) Check(_ context.Context, _ string, onPartial func([]*model.Typo)) error {
	onPartial([]*model.Typo{{Token: "어떻해", Suggestions: []string{"어떡해"}}})
	return nil
}

// setupFix points the command at a fake speller and a temp overlay dir.
func setupFix(t *testing.T, write bool) (dir string, out *bytes.Buffer) {
	t.Helper()
	dir = t.TempDir()
	app.cfg = &config.Config{Service: "pnu"}
	app.logger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	app.checker = &hanspell.Checker{
		Spellers: map[model.Service]speller.Speller{model.PNU: oneTypo{}},
		Overlay:  overlay.New(overlay.Paths{History: filepath.Join(dir, "history")}, app.logger),
	}

	out = &bytes.Buffer{}
	fixCmd.SetContext(context.Background())
	fixCmd.SetOut(out)
	fixCmd.SetErr(&bytes.Buffer{})
	require.NoError(t, fixCmd.Flags().Set("write", strconv.FormatBool(write)))
	t.Cleanup(func() { _ = fixCmd.Flags().Set("write", "false") })
	return dir, out
}

func TestFix_StdoutLeavesHistoryAlone(t *testing.T) {
	dir, out := setupFix(t, false)
	in := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(in, []byte("어떻해 하지"), 0o644))

	require.NoError(t, runFix(fixCmd, []string{in}))
	assert.Equal(t, "어떡해 하지", out.String())
	assert.NoFileExists(t, filepath.Join(dir, "history"))

	data, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, "어떻해 하지", string(data))
}

func TestFix_WriteRecordsHistory(t *testing.T) {
	dir, _ := setupFix(t, true)
	in := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(in, []byte("어떻해 하지"), 0o644))

	require.NoError(t, runFix(fixCmd, []string{in}))

	data, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, "어떡해 하지", string(data))

	hist, err := os.ReadFile(filepath.Join(dir, "history"))
	require.NoError(t, err)
	assert.Equal(t, "어떻해 -> 어떡해\n", string(hist))
}
