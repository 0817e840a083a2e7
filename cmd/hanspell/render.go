package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/Alfex4936/hanspell/hanspell"
	"github.com/Alfex4936/hanspell/internal/model"
)

var (
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	hintColor = color.New(color.FgHiBlack)
	errColor  = color.New(color.FgRed, color.Bold)
	fixColor  = color.New(color.FgGreen)
)

func severityColor(s model.Severity) *color.Color {
	switch s {
	case model.Error:
		return errColor
	case model.Information:
		return infoColor
	case model.Hint:
		return hintColor
	}
	return warnColor
}

// renderMatches prints one block per match:
//
//	name:line:col: severity: info
//	  <source line>
//	  <caret under the match> -> suggestion
//
// Lines and columns are printed 1-based.
func renderMatches(w io.Writer, name, text string, matches []model.Match) {
	lines := strings.Split(text, "\n")
	for _, m := range matches {
		sev := m.Severity
		if sev == model.SeverityUnset {
			sev = model.Warning
		}
		info := strings.ReplaceAll(m.Info, "\n", " ")
		fmt.Fprintf(w, "%s:%d:%d: %s %s\n", name, m.Line+1, m.Column+1, severityColor(sev).Sprint(sev.String()+":"), info)
		if m.Line >= len(lines) {
			continue
		}
		line := strings.TrimSuffix(lines[m.Line], "\r")
		fmt.Fprintf(w, "  %s\n", line)
		fmt.Fprintf(w, "  %s", caret(line, m.Column, m.Length))
		if len(m.Suggestions) > 0 {
			fmt.Fprintf(w, " -> %s", fixColor.Sprint(strings.Join(m.Suggestions, ", ")))
		}
		fmt.Fprintln(w)
	}
}

// caret returns the marker line for runes [col, col+length) of line,
// padded by display width so it sits under wide Hangul correctly.
func caret(line string, col, length int) string {
	runes := []rune(line)
	if col > len(runes) {
		col = len(runes)
	}
	end := min(col+length, len(runes))
	pad := runewidth.StringWidth(string(runes[:col]))
	width := max(runewidth.StringWidth(string(runes[col:end])), 1)
	return strings.Repeat(" ", pad) + strings.Repeat("^", width)
}

func summaryLine(n int, res *hanspell.CheckResult) string {
	if n == 0 {
		return res.Message() + " 오류가 없습니다."
	}
	return fmt.Sprintf("%s 오류 %d개", res.Message(), n)
}
