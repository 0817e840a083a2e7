package overlay

import (
	"errors"
	"io/fs"
	"os"
	"time"
)

type fileState int

const (
	stateUnknown fileState = iota
	stateMissing
	stateLoaded
)

// cachedFile remembers the modification time of the last read so callers
// re-parse only when the file changed. External edits are picked up on the
// next read; nothing watches the file.
type cachedFile struct {
	path    string
	state   fileState
	modTime time.Time
}

// read returns the content when the file changed since the previous call.
// A missing file reads as changed once (to empty) and then as unchanged.
func (f *cachedFile) read() (data []byte, changed bool, err error) {
	if f.path == "" {
		return nil, f.markMissing(), nil
	}
	st, err := os.Stat(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, f.markMissing(), nil
	}
	if err != nil {
		return nil, false, err
	}
	if f.state == stateLoaded && st.ModTime().Equal(f.modTime) {
		return nil, false, nil
	}
	data, err = os.ReadFile(f.path)
	if err != nil {
		return nil, false, err
	}
	f.state, f.modTime = stateLoaded, st.ModTime()
	return data, true, nil
}

func (f *cachedFile) markMissing() bool {
	changed := f.state != stateMissing
	f.state, f.modTime = stateMissing, time.Time{}
	return changed
}

// forget makes the next read re-parse the file.
func (f *cachedFile) forget() { f.state = stateUnknown }
