package overlay

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/Alfex4936/hanspell/internal/boundary"
	"github.com/Alfex4936/hanspell/internal/model"
)

// RuleInfo is the explanation of a rule that brings none.
const RuleInfo = "사용자 정의 표현식"

// badExpression is one record of ~/.hanspell-bad-expressions.json.
type badExpression struct {
	Expression  *string  `json:"expression"`
	Suggestions []string `json:"suggestions"`
	Info        string   `json:"info"`
	Severity    string   `json:"severity"`
}

type ruleFile struct {
	BadExpressions []badExpression `json:"bad-expressions"`
}

var errNoExpression = errors.New(`no "expression" in JSON`)

// parseRules decodes the rule file. A malformed file is an error and the
// caller drops every rule; an expression that does not compile only drops
// that rule.
func parseRules(data []byte, logger *slog.Logger) ([]*model.Typo, error) {
	var f ruleFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	out := make([]*model.Typo, 0, len(f.BadExpressions))
	for _, bad := range f.BadExpressions {
		if bad.Expression == nil {
			return nil, errNoExpression
		}
		if *bad.Expression == "" {
			logger.Warn("overlay: skipping empty bad expression")
			continue
		}
		p, err := boundary.CompileRule(*bad.Expression)
		if err != nil {
			logger.Warn("overlay: skipping bad expression", "expression", *bad.Expression, "err", err)
			continue
		}
		info := bad.Info
		if info == "" {
			info = RuleInfo
		}
		suggestions := bad.Suggestions
		if suggestions == nil {
			suggestions = []string{}
		}
		out = append(out, model.NewRuleTypo(*bad.Expression, p, suggestions, info, model.ParseSeverity(bad.Severity)))
	}
	return out, nil
}
