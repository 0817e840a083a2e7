package hanspell

import (
	"sort"
	"strings"

	"github.com/Alfex4936/hanspell/internal/model"
)

// FixTypo replaces the range of m with suggestion.
func FixTypo(m model.Match, suggestion string) model.Edit {
	return model.Edit{
		Line:    m.Line,
		Column:  m.Column,
		Length:  m.Length,
		Token:   m.Text,
		NewText: suggestion,
	}
}

// FixAll applies the first suggestion of every match that has one.
func FixAll(matches []model.Match) []model.Edit {
	return fixWhere(matches, func(model.Match) bool { return true })
}

// FixCommon is FixAll restricted to typos confirmed by several sources.
func FixCommon(matches []model.Match) []model.Edit {
	return fixWhere(matches, func(m model.Match) bool { return m.Typo != nil && m.Typo.IsCommon() })
}

// fixWhere builds edits in document order. An edit overlapping one already
// taken is dropped so the list can always be applied as a whole.
func fixWhere(matches []model.Match, keep func(model.Match) bool) []model.Edit {
	sorted := make([]model.Match, 0, len(matches))
	for _, m := range matches {
		if len(m.Suggestions) > 0 && keep(m) {
			sorted = append(sorted, m)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Line != sorted[j].Line {
			return sorted[i].Line < sorted[j].Line
		}
		return sorted[i].Column < sorted[j].Column
	})

	edits := make([]model.Edit, 0, len(sorted))
	line, end := -1, 0
	for _, m := range sorted {
		if m.Line == line && m.Column < end {
			continue
		}
		edits = append(edits, FixTypo(m, m.Suggestions[0]))
		line, end = m.Line, m.Column+m.Length
	}
	return edits
}

// ApplyEdits returns text with edits applied. Edits must not overlap; on
// each line they are applied right to left so earlier columns stay valid.
func ApplyEdits(text string, edits []model.Edit) string {
	if len(edits) == 0 {
		return text
	}
	byLine := make(map[int][]model.Edit)
	for _, e := range edits {
		byLine[e.Line] = append(byLine[e.Line], e)
	}

	lines := strings.Split(text, "\n")
	for ln, es := range byLine {
		if ln < 0 || ln >= len(lines) {
			continue
		}
		sort.Slice(es, func(i, j int) bool { return es[i].Column > es[j].Column })
		runes := []rune(lines[ln])
		for _, e := range es {
			if e.Column < 0 || e.Column+e.Length > len(runes) {
				continue
			}
			repl := []rune(e.NewText)
			runes = append(runes[:e.Column:e.Column], append(repl, runes[e.Column+e.Length:]...)...)
		}
		lines[ln] = string(runes)
	}
	return strings.Join(lines, "\n")
}

// HistoryLines renders edits as "token -> suggestion" log lines.
func HistoryLines(edits []model.Edit) []string {
	out := make([]string, len(edits))
	for i, e := range edits {
		out[i] = e.Token + " -> " + e.NewText
	}
	return out
}
