package hanspell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alfex4936/hanspell/internal/boundary"
	"github.com/Alfex4936/hanspell/internal/model"
)

func typo(token string) *model.Typo {
	return &model.Typo{Token: token, Suggestions: []string{token + "!"}}
}

func daumTypo(token string) *model.Typo {
	t := typo(token)
	t.Category = "spell"
	return t
}

func localTypo(token string) *model.Typo {
	t := typo(token)
	t.Local = true
	return t
}

func tokensOf(ts []*model.Typo) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Token
	}
	return out
}

func TestConsolidate_Empty(t *testing.T) {
	assert.Empty(t, Consolidate(nil, model.All))
	assert.Empty(t, Consolidate([]*model.Typo{}, model.PNU))
}

func TestConsolidate_PaddedDuplicate(t *testing.T) {
	out := Consolidate([]*model.Typo{typo("안녕 하세요."), typo("안녕 하세요")}, model.PNU)
	assert.Equal(t, []string{"안녕 하세요"}, tokensOf(out))
}

func TestConsolidate_DifferentWordsSurvive(t *testing.T) {
	out := Consolidate([]*model.Typo{typo("채마밭"), typo("채마")}, model.PNU)
	assert.Equal(t, []string{"채마", "채마밭"}, tokensOf(out))
}

func TestConsolidate_ExactDuplicates(t *testing.T) {
	a, b := typo("오류"), typo("오류")
	b.Suggestions = []string{"다른 제안"}
	out := Consolidate([]*model.Typo{a, b, typo("\"오류\"")}, model.PNU)
	require.Len(t, out, 1)
	assert.Same(t, a, out[0], "first report of equal length wins")
}

func TestConsolidate_LengthAscendingAndStable(t *testing.T) {
	in := []*model.Typo{typo("세글자"), typo("두자"), typo("다섯글자요"), typo("또두")}
	out := Consolidate(in, model.PNU)
	assert.Equal(t, []string{"두자", "또두", "세글자", "다섯글자요"}, tokensOf(out))
	assert.Equal(t, "세글자", in[0].Token, "input order untouched")
}

func TestConsolidate_EliminationIsFinal(t *testing.T) {
	// "(같다)" is removed by "같다" and must not be reconsidered by "(같다".
	short, mid, long := typo("같다"), daumTypo("(같다"), daumTypo("(같다)")
	out := Consolidate([]*model.Typo{long, mid, short}, model.All)
	assert.Equal(t, []string{"같다"}, tokensOf(out))
	assert.True(t, short.IsCommon())
}

func TestConsolidate_CommonAcrossServices(t *testing.T) {
	pnu, daum := typo("오류"), daumTypo("오류")
	out := Consolidate([]*model.Typo{pnu, daum}, model.All)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Common)
	assert.True(t, *out[0].Common)
}

func TestConsolidate_NotCommonWithinOneService(t *testing.T) {
	out := Consolidate([]*model.Typo{typo("오류"), typo("오류.")}, model.All)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Common)
	assert.False(t, *out[0].Common)
}

func TestConsolidate_LoneSurvivorInAllModeIsFalse(t *testing.T) {
	out := Consolidate([]*model.Typo{daumTypo("혼자")}, model.All)
	require.NotNil(t, out[0].Common)
	assert.False(t, *out[0].Common)
}

func TestConsolidate_LocalIsCommon(t *testing.T) {
	out := Consolidate([]*model.Typo{localTypo("어떻해")}, model.All)
	assert.True(t, out[0].IsCommon())

	// A remote report subsumed into a local one, and the other way round.
	out = Consolidate([]*model.Typo{typo("어떻해."), localTypo("어떻해")}, model.All)
	require.Len(t, out, 1)
	assert.True(t, out[0].Local)
	assert.True(t, out[0].IsCommon())

	remote := typo("왠일")
	out = Consolidate([]*model.Typo{remote, localTypo("왠일!")}, model.All)
	require.Len(t, out, 1)
	assert.Same(t, remote, out[0])
	assert.True(t, remote.IsCommon())
}

func TestConsolidate_SingleServiceUnsetsCommon(t *testing.T) {
	yes := true
	a := typo("오류")
	a.Common = &yes
	out := Consolidate([]*model.Typo{a, daumTypo("오류"), localTypo("틀림")}, model.PNU)
	for _, t2 := range out {
		assert.Nil(t, t2.Common, t2.Token)
	}
}

func TestConsolidate_BuildsPatternOnce(t *testing.T) {
	out := Consolidate([]*model.Typo{typo("같다")}, model.PNU)
	p := out[0].Pattern()
	assert.Same(t, p, out[0].Pattern())
	assert.Equal(t, boundary.Build("같다").String(), p.String())
}

func TestConsolidate_RulesPassThrough(t *testing.T) {
	p, err := boundary.CompileRule(`오류`)
	require.NoError(t, err)
	rule := model.NewRuleTypo("오류", p, nil, "규칙", model.Hint)

	out := Consolidate([]*model.Typo{typo("오류"), rule}, model.All)
	assert.Len(t, out, 2)
	assert.Nil(t, rule.Common)
}
