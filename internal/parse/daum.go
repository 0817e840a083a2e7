package parse

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/Alfex4936/hanspell/internal/model"
)

const (
	attrType   = "data-error-type"
	attrInput  = "data-error-input"
	attrOutput = "data-error-output"
)

var daumMarker = []byte("grammar_checker")

// Daum scans a DAUM grammar checker page for flagged spans.
//
//	<a class="txt_spell" data-error-type="space" data-error-input="너는나와"
//	   data-error-output="너는 나와" ...>
//
// DAUM gives no explanation, only the category; Info is left empty.
func Daum(body []byte) ([]*model.Typo, error) {
	z := html.NewTokenizer(bytes.NewReader(body))
	var out []*model.Typo
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				if out == nil && !bytes.Contains(body, daumMarker) {
					return nil, ErrParse
				}
				return out, nil
			}
			return nil, errors.Join(ErrParse, z.Err())
		case html.StartTagToken, html.SelfClosingTagToken:
			if t := daumTypo(z); t != nil {
				out = append(out, t)
			}
		}
	}
}

func daumTypo(z *html.Tokenizer) *model.Typo {
	_, hasAttr := z.TagName()
	if !hasAttr {
		return nil
	}
	var typ, input, output string
	found := false
	for {
		key, val, more := z.TagAttr()
		switch string(key) {
		case attrType:
			typ, found = string(val), true
		case attrInput:
			input = string(val)
		case attrOutput:
			output = string(val)
		}
		if !more {
			break
		}
	}
	input = strings.TrimSpace(input)
	if !found || input == "" {
		return nil
	}
	t := &model.Typo{Token: input, Category: typ}
	if output = strings.TrimSpace(output); output != "" {
		t.Suggestions = []string{output}
	}
	return t
}
