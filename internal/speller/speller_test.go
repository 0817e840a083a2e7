package speller

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alfex4936/hanspell/internal/model"
	"github.com/Alfex4936/hanspell/internal/parse"
)

// fakePoster answers each call with the next body, or fails at failAt.
type fakePoster struct {
	bodies []string
	failAt int
	calls  []url.Values
	urls   []string
}

func (f *fakePoster) PostForm(_ context.Context, rawURL string, form url.Values) ([]byte, error) {
	n := len(f.calls)
	f.calls = append(f.calls, form)
	f.urls = append(f.urls, rawURL)
	if f.failAt > 0 && n+1 == f.failAt {
		return nil, errors.New("connection reset")
	}
	return []byte(f.bodies[n%len(f.bodies)]), nil
}

const pnuBody = `data = [{"errInfo":[{"orgStr":"머고나서","candWord":"먹고 나서","help":"띄어쓰기"}]}];`

func TestPNU_StreamsPerChunk(t *testing.T) {
	fp := &fakePoster{bodies: []string{pnuBody}}
	p := &PNU{Client: fp}

	var got [][]*model.Typo
	text := strings.Repeat("머고나서 ", 450)
	err := p.Check(context.Background(), text, func(ts []*model.Typo) { got = append(got, ts) })
	require.NoError(t, err)

	assert.Len(t, fp.calls, 2)
	assert.Equal(t, DefaultPNUURL, fp.urls[0])
	assert.Len(t, got, 2)
	assert.Equal(t, "머고나서", got[0][0].Token)
}

func TestPNU_FailureKeepsEarlierPartials(t *testing.T) {
	fp := &fakePoster{bodies: []string{pnuBody}, failAt: 2}
	p := &PNU{URL: "http://pnu.test", Client: fp}

	var got int
	err := p.Check(context.Background(), strings.Repeat("머고나서 ", 450), func(ts []*model.Typo) { got += len(ts) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pnu")
	assert.Equal(t, 1, got)
	assert.Equal(t, "http://pnu.test", fp.urls[0])
}

func TestPNU_ParseError(t *testing.T) {
	p := &PNU{Client: &fakePoster{bodies: []string{"<html>점검 중</html>"}}}
	err := p.Check(context.Background(), "글", func([]*model.Typo) {})
	assert.ErrorIs(t, err, parse.ErrParse)
}

func TestDaum_Check(t *testing.T) {
	body := `<div class="grammar_checker"><a data-error-type="space" data-error-input="너는나와" data-error-output="너는 나와"></a></div>`
	fp := &fakePoster{bodies: []string{body}}
	d := &Daum{Client: fp}

	var got []*model.Typo
	err := d.Check(context.Background(), "너는나와 간다", func(ts []*model.Typo) { got = append(got, ts...) })
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "space", got[0].Category)
	assert.Equal(t, "너는나와 간다", fp.calls[0].Get("sentence"))
	assert.Equal(t, DefaultDaumURL, fp.urls[0])
}

func TestCheck_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fp := &fakePoster{bodies: []string{pnuBody}}
	err := (&PNU{Client: fp}).Check(ctx, "글", func([]*model.Typo) {})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fp.calls)
}
