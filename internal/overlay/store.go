// Package overlay holds the user's local files that take part in a check
// next to the remote services: a typo database, an ignore list and a set of
// regex rules ("bad expressions"), plus the fix history log.
package overlay

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/text/unicode/norm"

	"github.com/Alfex4936/hanspell/internal/model"
)

// Paths locates the overlay files. An empty path disables that overlay.
type Paths struct {
	Typos          string
	Ignore         string
	BadExpressions string
	History        string
}

// DefaultPaths returns the dot files under the home directory.
func DefaultPaths() (Paths, error) {
	home, err := homedir.Dir()
	if err != nil {
		return Paths{}, fmt.Errorf("overlay: home directory: %w", err)
	}
	return Paths{
		Typos:          filepath.Join(home, ".hanspell-typos"),
		Ignore:         filepath.Join(home, ".hanspell-ignore"),
		BadExpressions: filepath.Join(home, ".hanspell-bad-expressions.json"),
		History:        filepath.Join(home, ".hanspell-history"),
	}, nil
}

// Store caches the parsed overlay files. Construct one per process and
// share it; all methods are safe for concurrent use.
type Store struct {
	Logger *slog.Logger

	mu         sync.Mutex
	typoFile   cachedFile
	ignoreFile cachedFile
	ruleFile   cachedFile

	typos  []*model.Typo
	ignore Matcher
	rules  []*model.Typo

	history *History
}

// New returns a store over paths. Nothing is read until Reload.
func New(paths Paths, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		Logger:     logger,
		typoFile:   cachedFile{path: paths.Typos},
		ignoreFile: cachedFile{path: paths.Ignore},
		ruleFile:   cachedFile{path: paths.BadExpressions},
		ignore:     nopMatcher{},
		history:    &History{Path: paths.History},
	}
}

// Reload re-reads every file whose modification time changed. Missing
// files count as empty. The returned notices describe malformed content
// the user should hear about; the affected overlay is then empty.
func (s *Store) Reload() (notices []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data, changed, err := s.typoFile.read(); err != nil {
		s.Logger.Warn("overlay: reading typo database", "path", s.typoFile.path, "err", err)
	} else if changed {
		s.typos = parseTypoDB(string(data))
		s.Logger.Debug("overlay: typo database loaded", "entries", len(s.typos))
	}

	if data, changed, err := s.ignoreFile.read(); err != nil {
		s.Logger.Warn("overlay: reading ignore list", "path", s.ignoreFile.path, "err", err)
	} else if changed {
		s.ignore = parseIgnore(string(data), s.Logger)
	}

	if data, changed, err := s.ruleFile.read(); err != nil {
		s.Logger.Warn("overlay: reading bad expressions", "path", s.ruleFile.path, "err", err)
	} else if changed {
		var rules []*model.Typo
		var perr error
		if len(bytes.TrimSpace(data)) > 0 {
			rules, perr = parseRules(data, s.Logger)
		}
		if perr != nil {
			rules = nil
			notices = append(notices, fmt.Sprintf("%s 오류: %v", filepath.Base(s.ruleFile.path), perr))
			s.Logger.Warn("overlay: bad expressions dropped", "path", s.ruleFile.path, "err", perr)
		}
		s.rules = rules
	}
	return notices
}

// Typos returns fresh copies of the user database entries.
func (s *Store) Typos() []*model.Typo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.typos)
}

// Rules returns fresh copies of the user regex rules.
func (s *Store) Rules() []*model.Typo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.rules)
}

// Ignored reports whether token matches the ignore list.
func (s *Store) Ignored(token string) bool {
	s.mu.Lock()
	m := s.ignore
	s.mu.Unlock()
	return m.Match(token)
}

// AppendIgnore adds token to the ignore file as a literal pattern.
func (s *Store) AppendIgnore(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ignoreFile.path == "" {
		return fmt.Errorf("overlay: no ignore file configured")
	}
	f, err := os.OpenFile(s.ignoreFile.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(f, glob.QuoteMeta(norm.NFC.String(token))); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// mtime granularity may hide a quick second write
	s.ignoreFile.forget()
	return nil
}

// History returns the fix history log.
func (s *Store) History() *History { return s.history }

func cloneAll(in []*model.Typo) []*model.Typo {
	if len(in) == 0 {
		return nil
	}
	out := make([]*model.Typo, len(in))
	for i, t := range in {
		out[i] = t.Clone()
	}
	return out
}
