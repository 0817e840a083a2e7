package hanspell

import (
	"sort"

	"github.com/Alfex4936/hanspell/internal/boundary"
	"github.com/Alfex4936/hanspell/internal/model"
)

// fromDifferentSources reports whether two reports come from different
// source kinds. Only DAUM sets Category, and user database entries are
// their own kind.
func fromDifferentSources(a, b *model.Typo) bool {
	return (a.Category != "") != (b.Category != "") || a.Local || b.Local
}

// Consolidate removes reports whose token is the same as, or the same as a
// shorter token padded only by non-word characters ("같다" and "같다."),
// and tags survivors with Common when svc is model.All.
//
// Reports are taken shortest first; a report removed by one survivor is
// never looked at again. The result keeps that length-ascending order and
// every survivor has its boundary pattern built. Rule reports pass through
// untouched. The input slice is not reordered.
func Consolidate(typos []*model.Typo, svc model.Service) []*model.Typo {
	if len(typos) == 0 {
		return []*model.Typo{}
	}

	sorted := make([]*model.Typo, len(typos))
	copy(sorted, typos)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Len() < sorted[j].Len() })

	all := svc == model.All
	removed := make([]bool, len(sorted))

	for i, short := range sorted {
		if removed[i] || short.IsRule() {
			continue
		}
		short.Pattern()

		if all {
			common := short.Local
			short.Common = &common
		} else {
			short.Common = nil
		}

		padded := boundary.NewPadded(short.Token)
		for j := i + 1; j < len(sorted); j++ {
			long := sorted[j]
			if removed[j] || long.IsRule() || !padded.Match(long.Token) {
				continue
			}
			removed[j] = true
			if all && fromDifferentSources(short, long) {
				*short.Common = true
			}
		}
	}

	out := make([]*model.Typo, 0, len(sorted))
	for i, t := range sorted {
		if !removed[i] {
			out = append(out, t)
		}
	}
	return out
}
