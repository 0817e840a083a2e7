package hanspell

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/Alfex4936/hanspell/internal/boundary"
	"github.com/Alfex4936/hanspell/internal/model"
)

// Locate finds every occurrence of typos in text, line by line.
//
// Matches of one typo within a line never overlap; matches of different
// typos may. The result is ordered by line, then column; matches at the same
// position keep the order of typos. A rule that fails mid-scan (match
// timeout) is logged and skipped for the rest of that line.
func Locate(text string, typos []*model.Typo) []model.Match {
	if text == "" || len(typos) == 0 {
		return nil
	}
	lines := strings.Split(text, "\n")
	var out []model.Match
	for _, t := range typos {
		p := t.Pattern()
		for ln, line := range lines {
			spans, err := p.FindAll(strings.TrimSuffix(line, "\r"))
			if err != nil {
				slog.Warn("hanspell: pattern scan failed", "pattern", p.String(), "line", ln, "err", err)
			}
			for _, s := range spans {
				out = append(out, newMatch(t, ln, s))
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Column < out[j].Column
	})
	return out
}

func newMatch(t *model.Typo, line int, s boundary.Span) model.Match {
	m := model.Match{
		Line:        line,
		Column:      s.Index,
		Length:      s.Length,
		Text:        s.Groups[0],
		Suggestions: t.Suggestions,
		Info:        t.Info,
		Severity:    severityOf(t),
		Common:      t.IsCommon(),
		Typo:        t,
	}
	if t.IsRule() {
		m.Suggestions = make([]string, len(t.Suggestions))
		for i, tmpl := range t.Suggestions {
			m.Suggestions[i] = boundary.Expand(tmpl, s.Groups)
		}
	}
	return m
}

// severityOf is the rule's own severity, or Warning unless the typo was
// seen by only one source during a combined check.
func severityOf(t *model.Typo) model.Severity {
	if t.Severity != model.SeverityUnset {
		return t.Severity
	}
	if t.Common != nil && !*t.Common {
		return model.Information
	}
	return model.Warning
}
