package overlay

import (
	"log/slog"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/text/unicode/norm"
)

// Matcher reports whether a token is on the ignore list.
type Matcher interface {
	Match(token string) bool
}

// nopMatcher stands for an empty ignore list.
type nopMatcher struct{}

func (nopMatcher) Match(string) bool { return false }

type globMatcher []glob.Glob

func (m globMatcher) Match(token string) bool {
	for _, g := range m {
		if g.Match(token) {
			return true
		}
	}
	return false
}

// parseIgnore compiles one glob per line ("이딸리아*", "톨스또이").
// Lines that fail to compile are logged and skipped.
func parseIgnore(data string, logger *slog.Logger) Matcher {
	var m globMatcher
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		g, err := glob.Compile(norm.NFC.String(line))
		if err != nil {
			logger.Warn("overlay: skipping ignore pattern", "pattern", line, "err", err)
			continue
		}
		m = append(m, g)
	}
	if len(m) == 0 {
		return nopMatcher{}
	}
	return m
}
