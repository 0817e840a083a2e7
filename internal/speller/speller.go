// Package speller talks to the remote Korean spell checkers.
package speller

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Alfex4936/hanspell/internal/chunk"
	"github.com/Alfex4936/hanspell/internal/model"
	"github.com/Alfex4936/hanspell/internal/parse"
)

const (
	DefaultPNUURL  = "https://nara-speller.co.kr/old_speller/results"
	DefaultDaumURL = "https://dic.daum.net/grammar_checker.do"

	// daumMaxRunes is the longest sentence field DAUM accepts.
	daumMaxRunes = 1000
)

// Speller is one remote spell-check service.
//
// Check calls onPartial zero or more times, synchronously, as pieces of the
// text come back, then returns. A nil error means the whole text was
// checked; otherwise the typos already delivered stand but the rest of the
// text was not checked.
type Speller interface {
	Check(ctx context.Context, text string, onPartial func([]*model.Typo)) error
}

// Poster sends a form and returns the response body.
type Poster interface {
	PostForm(ctx context.Context, rawURL string, form url.Values) ([]byte, error)
}

// PNU checks text with the 부산대 (nara) speller.
type PNU struct {
	URL    string
	Client Poster
}

// Check splits text into ≤300-어절 chunks and posts them one by one.
func (p *PNU) Check(ctx context.Context, text string, onPartial func([]*model.Typo)) error {
	for _, part := range chunk.Split300(text) {
		if err := ctx.Err(); err != nil {
			return err
		}
		body, err := p.Client.PostForm(ctx, orDefault(p.URL, DefaultPNUURL), url.Values{"text1": {part}})
		if err != nil {
			return fmt.Errorf("pnu: %w", err)
		}
		typos, err := parse.PNU(body)
		if err != nil {
			return fmt.Errorf("pnu: %w", err)
		}
		if len(typos) > 0 {
			onPartial(typos)
		}
	}
	return nil
}

// Daum checks text with the DAUM grammar checker.
type Daum struct {
	URL    string
	Client Poster
}

// Check splits text into ≤1000-rune chunks on line boundaries.
func (d *Daum) Check(ctx context.Context, text string, onPartial func([]*model.Typo)) error {
	for _, part := range chunk.SplitRunes(text, daumMaxRunes) {
		if err := ctx.Err(); err != nil {
			return err
		}
		body, err := d.Client.PostForm(ctx, orDefault(d.URL, DefaultDaumURL), url.Values{"sentence": {part}})
		if err != nil {
			return fmt.Errorf("daum: %w", err)
		}
		typos, err := parse.Daum(body)
		if err != nil {
			return fmt.Errorf("daum: %w", err)
		}
		if len(typos) > 0 {
			onPartial(typos)
		}
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
