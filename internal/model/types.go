package model

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/Alfex4936/hanspell/internal/boundary"
)

// Service selects which remote spell checker(s) a check goes through.
type Service int

const (
	PNU  Service = iota // 부산대 (nara-speller)
	Daum                // 다음 grammar checker
	All                 // PNU and DAUM together
)

func (s Service) String() string {
	switch s {
	case PNU:
		return "pnu"
	case Daum:
		return "daum"
	case All:
		return "all"
	}
	return fmt.Sprintf("Service(%d)", int(s))
}

// Label is the name shown to users in status messages.
func (s Service) Label() string {
	switch s {
	case PNU:
		return "부산대"
	case Daum:
		return "다음"
	}
	return "전체"
}

// Members expands All into the concrete remote services, in a fixed order.
func (s Service) Members() []Service {
	if s == All {
		return []Service{PNU, Daum}
	}
	return []Service{s}
}

// ParseService accepts "pnu", "daum" or "all" (case-insensitive).
func ParseService(v string) (Service, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "pnu", "nara":
		return PNU, nil
	case "daum":
		return Daum, nil
	case "all", "":
		return All, nil
	}
	return 0, fmt.Errorf("model: unknown service %q (want pnu | daum | all)", v)
}

// Severity follows the LSP numbering so editors can use it as-is.
type Severity int

const (
	SeverityUnset Severity = iota
	Error
	Warning
	Information
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Information:
		return "information"
	case Hint:
		return "hint"
	}
	return ""
}

// ParseSeverity maps a user supplied name; anything unknown is Information.
func ParseSeverity(v string) Severity {
	switch strings.ToLower(v) {
	case "error":
		return Error
	case "warning":
		return Warning
	case "hint":
		return Hint
	}
	return Information
}

func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Severity) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*s = SeverityUnset
		return nil
	}
	*s = ParseSeverity(string(b))
	return nil
}

// Typo is one reported issue for a token of the checked text.
//
// A Typo lives only as long as the check that produced it; overlay stores
// hand out clones so that computed fields never leak between checks.
type Typo struct {
	Token       string   `json:"token"`              // flagged span, or the expression of a rule
	Suggestions []string `json:"suggestions"`        // first one is the default fix
	Info        string   `json:"info,omitempty"`     // explanation shown to the user
	Category    string   `json:"category,omitempty"` // set by DAUM only ("space", "spell", ...)
	Local       bool     `json:"local,omitempty"`    // from the user typo database
	Common      *bool    `json:"common,omitempty"`   // nil outside a combined check
	Severity    Severity `json:"severity,omitempty"` // rules only; otherwise derived

	rule    *boundary.Pattern
	once    sync.Once
	pattern *boundary.Pattern
}

// NewRuleTypo wraps a compiled user rule. Its suggestions are templates
// expanded per match.
func NewRuleTypo(expr string, p *boundary.Pattern, suggestions []string, info string, sev Severity) *Typo {
	return &Typo{
		Token:       expr,
		Suggestions: suggestions,
		Info:        info,
		Severity:    sev,
		rule:        p,
	}
}

// IsRule reports whether t comes from a user regex rule.
func (t *Typo) IsRule() bool { return t.rule != nil }

// IsCommon reports whether t was confirmed by more than one source kind.
func (t *Typo) IsCommon() bool { return t.Common != nil && *t.Common }

// Len is the token length in runes.
func (t *Typo) Len() int { return utf8.RuneCountInString(t.Token) }

// Pattern returns the boundary pattern of the token, built on first use.
func (t *Typo) Pattern() *boundary.Pattern {
	if t.rule != nil {
		return t.rule
	}
	t.once.Do(func() { t.pattern = boundary.Build(t.Token) })
	return t.pattern
}

// Clone copies the reported fields. Computed fields start over.
func (t *Typo) Clone() *Typo {
	c := &Typo{
		Token:    t.Token,
		Info:     t.Info,
		Category: t.Category,
		Local:    t.Local,
		Severity: t.Severity,
		rule:     t.rule,
	}
	if t.Suggestions != nil {
		c.Suggestions = append([]string(nil), t.Suggestions...)
	}
	return c
}

// Match is one occurrence of a Typo in a document.
// Line, Column and Length are 0-based rune positions within a line.
type Match struct {
	Line        int      `json:"line"`
	Column      int      `json:"column"`
	Length      int      `json:"length"`
	Text        string   `json:"text"`        // matched substring
	Suggestions []string `json:"suggestions"` // templates already expanded
	Info        string   `json:"info,omitempty"`
	Severity    Severity `json:"severity"`
	Common      bool     `json:"common,omitempty"`
	Typo        *Typo    `json:"-"`
}

// Edit replaces Length runes at (Line, Column) with NewText.
type Edit struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Length  int    `json:"length"`
	Token   string `json:"token"`
	NewText string `json:"newText"`
}

// Result is JSON-serialisable as-is.
type Result struct {
	Service      string   `json:"service"`
	Original     string   `json:"original"`         // 원본 텍스트
	Corrected    string   `json:"corrected"`        // 모든 첫 제안을 적용한 텍스트
	EditDistance int      `json:"editDistance"`     // Levenshtein(original, corrected)
	CharCount    int      `json:"charCount"`        // UTF-8 rune length
	ErrorCount   int      `json:"errorCount"`       // number of matches
	Typos        []*Typo  `json:"typos"`            // consolidated set
	Matches      []Match  `json:"matches"`          // located occurrences
	Failed       []string `json:"failed,omitempty"` // services that could not answer
	Notices      []string `json:"notices,omitempty"`
	Message      string   `json:"message"`
}
