package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/Alfex4936/hanspell/hanspell"
	"github.com/Alfex4936/hanspell/internal/model"
)

func TestCaret(t *testing.T) {
	tests := []struct {
		line        string
		col, length int
		want        string
	}{
		{"abc def", 4, 3, "    ^^^"},
		{"대한민국은 민주공화국이다.", 6, 5, "           ^^^^^^^^^^"},
		{"가 b", 2, 1, "   ^"},
		{"짧음", 5, 3, "    ^"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, caret(tc.line, tc.col, tc.length), tc.line)
	}
}

func TestRenderMatches(t *testing.T) {
	color.NoColor = true
	text := "첫 줄\n대한민국은 민주공화국이다."
	matches := []model.Match{{
		Line: 1, Column: 6, Length: 5, Text: "민주공화국",
		Suggestions: []string{"민주 공화국"}, Info: "띄어쓰기\n오류", Severity: model.Warning,
	}}

	var buf bytes.Buffer
	renderMatches(&buf, "a.txt", text, matches)
	assert.Equal(t,
		"a.txt:2:7: warning: 띄어쓰기 오류\n"+
			"  대한민국은 민주공화국이다.\n"+
			"             ^^^^^^^^^^ -> 민주 공화국\n",
		buf.String())
}

func TestSummaryLine(t *testing.T) {
	ok := &hanspell.CheckResult{}
	assert.Equal(t, "맞춤법 검사를 마쳤습니다. 오류가 없습니다.", summaryLine(0, ok))

	partial := &hanspell.CheckResult{Failed: []model.Service{model.Daum}}
	assert.Contains(t, summaryLine(2, partial), "오류 2개")
	assert.Contains(t, summaryLine(2, partial), "다음 서비스 접속 오류")
}
