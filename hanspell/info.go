package hanspell

import "log/slog"

// DefaultInfo is used for a report whose category is unknown.
const DefaultInfo = "맞춤법 오류"

// categoryInfo maps DAUM categories to the text shown to the user.
var categoryInfo = map[string]string{
	"space":       "띄어쓰기 오류",
	"spell":       "맞춤법 오류",
	"space_spell": "띄어쓰기와 맞춤법 오류",
	"doubt":       "표준어 의심",
}

// infoFor returns the explanation of a report that came without one.
func infoFor(category string, logger *slog.Logger) string {
	if info, ok := categoryInfo[category]; ok {
		return info
	}
	logger.Warn("hanspell: unknown typo category", "category", category)
	return DefaultInfo
}
