// Package boundary builds whole-word patterns for Korean text.
//
// Hangul jamo, Hangul syllables and ASCII letters are word characters;
// everything else separates words. A token is matched only where it is not
// glued to another word, except that a trailing particle or copula
// (조사, 이다) may follow a token of two or more word runes: "민주공화국"
// matches in "민주공화국이다." but "같다" does not match in "같다랗다"
// and "대" does not match in "대만".
package boundary

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// wordClass is the body of a character class of word characters.
const wordClass = `ㄱ-ㅎㅏ-ㅣ가-힣a-zA-Z`

// particles may trail a token without breaking its word boundary.
// Longer forms come first so the alternation reads naturally; the
// lookahead backtracks either way.
var particles = []string{
	"에서부터", "이었습니다", "였습니다", "입니다", "이에요", "이었다", "에서는", "으로는", "이라고", "에게서",
	"이라는", "이지만", "처럼", "까지", "부터", "조차", "마저", "보다", "에서", "에게", "께서", "한테",
	"으로", "이나", "이다", "이고", "이며", "이라", "라고", "이랑", "하고", "에는", "로는", "에도",
	"와는", "과는", "예요", "였다", "이요", "은", "는", "이", "가", "을", "를", "의", "에", "께",
	"로", "와", "과", "도", "만", "나", "랑", "요", "고",
}

// RuleTimeout bounds a single match attempt of a user supplied rule.
const RuleTimeout = time.Second

var (
	// trailing lets a particle follow the token.
	trailing = `(?=(?:` + strings.Join(particles, "|") + `)?(?:[^` + wordClass + `]|$))`
	// strictTrailing is used after one-rune tokens, which would otherwise
	// match the first syllable of words like "대만" or "주의".
	strictTrailing = `(?=[^` + wordClass + `]|$)`
)

// IsWordRune reports whether r counts as part of a word.
func IsWordRune(r rune) bool {
	switch {
	case r >= 'ㄱ' && r <= 'ㅎ', r >= 'ㅏ' && r <= 'ㅣ':
		return true
	case r >= '가' && r <= '힣':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	}
	return false
}

func wordRunes(runes []rune) int {
	n := 0
	for _, r := range runes {
		if IsWordRune(r) {
			n++
		}
	}
	return n
}

// Pattern is a compiled matcher, either built from a token or supplied by a
// user rule. It holds no cursor state and is safe to reuse across lines.
type Pattern struct {
	re *regexp2.Regexp
}

// Span is one match within a line. Index and Length count runes.
// Groups[0] is the whole match; groups that did not take part are "".
type Span struct {
	Index  int
	Length int
	Groups []string
}

// Build returns the whole-word pattern of token. The leading boundary is
// asserted only when the token starts with a word character, the trailing
// one only when it ends with one.
func Build(token string) *Pattern {
	var b strings.Builder
	runes := []rune(token)
	if len(runes) > 0 && IsWordRune(runes[0]) {
		b.WriteString(`(?<![` + wordClass + `])`)
	}
	b.WriteString(regexp2.Escape(token))
	if len(runes) > 0 && IsWordRune(runes[len(runes)-1]) {
		if wordRunes(runes) < 2 {
			b.WriteString(strictTrailing)
		} else {
			b.WriteString(trailing)
		}
	}
	// The token is escaped, so compilation cannot fail.
	return &Pattern{re: regexp2.MustCompile(b.String(), regexp2.None)}
}

// CompileRule compiles a user supplied expression (JavaScript flavour).
func CompileRule(expr string) (*Pattern, error) {
	re, err := regexp2.Compile(expr, regexp2.ECMAScript)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = RuleTimeout
	return &Pattern{re: re}, nil
}

// String returns the source expression.
func (p *Pattern) String() string { return p.re.String() }

// FindAll returns every non-overlapping match in line, left to right.
func (p *Pattern) FindAll(line string) ([]Span, error) {
	var spans []Span
	m, err := p.re.FindStringMatch(line)
	last := -1
	for m != nil && err == nil {
		// regexp2 steps past empty matches itself; this only guards against
		// a match that makes no progress at all.
		if m.Length == 0 && m.Index == last {
			break
		}
		last = m.Index
		spans = append(spans, toSpan(m))
		m, err = p.re.FindNextMatch(m)
	}
	return spans, err
}

func toSpan(m *regexp2.Match) Span {
	groups := make([]string, m.GroupCount())
	for i := range groups {
		g := m.GroupByNumber(i)
		if g != nil && len(g.Captures) > 0 {
			groups[i] = g.String()
		}
	}
	return Span{Index: m.Index, Length: m.Length, Groups: groups}
}

// Padded matches strings that are a token surrounded only by non-word runes,
// e.g. "같다." or "(같다)" for "같다".
type Padded struct {
	re *regexp2.Regexp
}

// NewPadded builds the padded matcher of token.
func NewPadded(token string) Padded {
	expr := `^[^` + wordClass + `]*` + regexp2.Escape(token) + `[^` + wordClass + `]*$`
	return Padded{re: regexp2.MustCompile(expr, regexp2.None)}
}

// Match reports whether s is the token plus non-word padding.
func (p Padded) Match(s string) bool {
	ok, err := p.re.MatchString(s)
	return err == nil && ok
}

var placeholder = regexp2.MustCompile(`\$([0-9])\b`, regexp2.ECMAScript)

// Expand substitutes $0..$9 in template with groups. A placeholder is
// replaced only when followed by a non-word character or the end, so "$10"
// is left alone; placeholders past len(groups) stay as written.
func Expand(template string, groups []string) string {
	if !strings.Contains(template, "$") {
		return template
	}
	out, err := placeholder.ReplaceFunc(template, func(m regexp2.Match) string {
		n := int(m.GroupByNumber(1).String()[0] - '0')
		if n < len(groups) {
			return groups[n]
		}
		return m.String()
	}, -1, -1)
	if err != nil {
		return template
	}
	return out
}
