package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pnuPage = `<html><script>
	data = [{"str":"너는나와 머고나서","errInfo":[
		{"help":"띄어쓰기 오류입니다.&lt;br/&gt;붙여 쓰지 않습니다.<br/>예: 너는 나와","errorIdx":0,"correctMethod":2,"start":0,"end":4,"orgStr":"너는나와","candWord":"너는 나와|너 는나와"},
		{"help":"","errorIdx":1,"start":5,"end":9,"orgStr":"머고나서","candWord":""}
	]}];
	pages = 1;
</script></html>`

func TestPNU_Decodes(t *testing.T) {
	typos, err := PNU([]byte(pnuPage))
	require.NoError(t, err)
	require.Len(t, typos, 2)

	assert.Equal(t, "너는나와", typos[0].Token)
	assert.Equal(t, []string{"너는 나와", "너 는나와"}, typos[0].Suggestions)
	assert.Equal(t, "띄어쓰기 오류입니다.\n붙여 쓰지 않습니다.\n예: 너는 나와", typos[0].Info)
	assert.Empty(t, typos[0].Category)

	assert.Equal(t, "머고나서", typos[1].Token)
	assert.Empty(t, typos[1].Suggestions)
}

func TestPNU_NoErrorBanner(t *testing.T) {
	typos, err := PNU([]byte("<p>맞춤법과 문법 오류를 찾지 못했습니다.</p>"))
	require.NoError(t, err)
	assert.Empty(t, typos)
}

func TestPNU_Garbage(t *testing.T) {
	_, err := PNU([]byte("<html>maintenance</html>"))
	assert.ErrorIs(t, err, ErrParse)

	_, err = PNU([]byte("data = [{broken];"))
	assert.ErrorIs(t, err, ErrParse)
}

func TestDataBlock(t *testing.T) {
	block, ok := dataBlock([]byte("x data = [1,2]; y = [3];"))
	require.True(t, ok)
	assert.Equal(t, `[1,2]`, string(block))

	_, ok = dataBlock([]byte("data = [1,2"))
	assert.False(t, ok)
	_, ok = dataBlock([]byte("[1,2];"))
	assert.False(t, ok)
}

const daumPage = `<html><body><div id="grammar_checker">
<a href="#none" class="txt_spell" data-error-type="space" data-error-input="너는나와" data-error-output="너는 나와" data-error-context="너는나와 kafka">너는나와</a>
<span data-error-type="spell" data-error-input="어떻해" data-error-output="어떡해"></span>
<a data-error-type="doubt" data-error-input="&quot;왠지&quot;" data-error-output=""></a>
<a class="other" data-error-input="무시"></a>
</div></body></html>`

func TestDaum_Scans(t *testing.T) {
	typos, err := Daum([]byte(daumPage))
	require.NoError(t, err)
	require.Len(t, typos, 3)

	assert.Equal(t, "너는나와", typos[0].Token)
	assert.Equal(t, "space", typos[0].Category)
	assert.Equal(t, []string{"너는 나와"}, typos[0].Suggestions)
	assert.Empty(t, typos[0].Info)

	assert.Equal(t, "spell", typos[1].Category)
	assert.Equal(t, "어떡해", typos[1].Suggestions[0])

	assert.Equal(t, `"왠지"`, typos[2].Token)
	assert.Empty(t, typos[2].Suggestions)
}

func TestDaum_EmptyResult(t *testing.T) {
	typos, err := Daum([]byte(`<div id="grammar_checker"></div>`))
	require.NoError(t, err)
	assert.Empty(t, typos)

	_, err = Daum([]byte(`<html>error</html>`))
	assert.ErrorIs(t, err, ErrParse)
}
