package overlay

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Alfex4936/hanspell/internal/model"
)

// TypoDBInfo is the explanation attached to every user database entry.
const TypoDBInfo = "사용자 맞춤법 데이터베이스 (~/.hanspell-typos)"

const typoSep = " -> "

// parseTypoDB reads "token -> suggestion" lines. Lines without exactly one
// separator or with an empty side are skipped.
func parseTypoDB(data string) []*model.Typo {
	var out []*model.Typo
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimRight(line, "\r")
		lr := strings.Split(line, typoSep)
		if len(lr) != 2 || lr[0] == "" || lr[1] == "" {
			continue
		}
		out = append(out, &model.Typo{
			Token:       norm.NFC.String(lr[0]),
			Suggestions: []string{norm.NFC.String(lr[1])},
			Info:        TypoDBInfo,
			Local:       true,
		})
	}
	return out
}
