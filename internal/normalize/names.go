package normalize

import (
	"fmt"
	"strings"
	"unicode"
)

// CompanyName strips trailing legal-entity suffixes and surrounding
// punctuation from a company name and collapses whitespace.
// Non-string inputs are rendered with fmt.Sprint first; nil becomes "".
func CompanyName(v any) string {
	s := strings.TrimSpace(toText(v))

	// Each pass runs the full rule list, then drops the commas, periods and
	// spaces a removed suffix leaves behind. Repeat until nothing changes so
	// stacked designators ("Co., Ltd.") strip completely.
	for {
		prev := s
		for _, rule := range suffixRules {
			s = rule.strip(s)
		}
		s = trimTrailingPunct(s)
		if s == prev {
			break
		}
	}

	return strings.Join(strings.Fields(s), " ")
}

// TrailingSuffix reports the name of the first rule matching the end of the
// trimmed input, if any.
func TrailingSuffix(v any) (string, bool) {
	s := strings.TrimSpace(toText(v))
	for _, rule := range suffixRules {
		if rule.re.MatchString(s) {
			return rule.Name, true
		}
	}
	return "", false
}

func toText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case *string:
		if t == nil {
			return ""
		}
		return *t
	default:
		return fmt.Sprint(v)
	}
}

func trimTrailingPunct(s string) string {
	return strings.TrimRightFunc(s, func(r rune) bool {
		return r == ',' || r == '.' || unicode.IsSpace(r)
	})
}
