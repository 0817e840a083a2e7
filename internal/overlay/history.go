package overlay

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// maxHistory is the size above which the history file is rotated.
const maxHistory = 10 << 20

// History appends applied fixes ("token -> suggestion") to a log file.
type History struct {
	Path string
}

// Write appends lines. A History without a path discards them.
func (h *History) Write(lines ...string) error {
	if h == nil || h.Path == "" || len(lines) == 0 {
		return nil
	}
	f, err := os.OpenFile(h.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// BackupIfTooLarge renames a history file over 10 MiB to the first free
// "<path>.N" and reports the new name ("" when nothing was done).
func (h *History) BackupIfTooLarge() (string, error) {
	if h == nil || h.Path == "" {
		return "", nil
	}
	st, err := os.Stat(h.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if st.Size() <= maxHistory {
		return "", nil
	}
	for i := 1; i < 10000; i++ {
		next := fmt.Sprintf("%s.%d", h.Path, i)
		if _, err := os.Stat(next); errors.Is(err, fs.ErrNotExist) {
			return next, os.Rename(h.Path, next)
		}
	}
	return "", fmt.Errorf("overlay: no free backup name for %s", h.Path)
}
