package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"html"
	"strings"

	"github.com/Alfex4936/hanspell/internal/model"
)

// ErrParse signals unexpected HTML/JS structure from upstream.
var ErrParse = errors.New("parse: could not parse server response")

// rawCorrection is one errInfo entry of the PNU data block.
type rawCorrection struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	OrgStr   string `json:"orgStr"`
	CandWord string `json:"candWord"`
	Help     string `json:"help"`
}

// rawChunk is the wrapper for the errInfo array.
type rawChunk struct {
	ErrInfo []rawCorrection `json:"errInfo"`
}

// noTypos is the start of the banner PNU shows instead of a data block
// when the text is clean.
var noTypos = []byte("맞춤법과 문법 오류를 찾지")

// PNU turns a whole PNU result page into typos.
// A page carrying the "no error" banner yields (nil, nil).
func PNU(body []byte) ([]*model.Typo, error) {
	raw, ok := dataBlock(body)
	switch {
	case ok:
		return Decode(raw)
	case bytes.Contains(body, noTypos):
		return nil, nil
	}
	return nil, ErrParse
}

// Decode converts the raw PNU JSON block into typos.
func Decode(raw []byte) ([]*model.Typo, error) {
	var wrap []rawChunk

	if err := json.Unmarshal(raw, &wrap); err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	var out []*model.Typo
	for _, c := range wrap {
		for _, e := range c.ErrInfo {
			if e.OrgStr == "" {
				continue
			}
			// 1) HTML entity → literal rune    (&gt;  → >)
			help := html.UnescapeString(e.Help)
			// 2) <br/>  → newline               (<br/> → \n)
			help = strings.ReplaceAll(help, "<br/>", "\n")

			out = append(out, &model.Typo{
				Token:       e.OrgStr,
				Suggestions: splitCandidates(e.CandWord),
				Info:        strings.TrimSpace(help),
			})
		}
	}
	return out, nil
}

func splitCandidates(s string) []string {
	var out []string
	for _, c := range strings.Split(s, "|") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
