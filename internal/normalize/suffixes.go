package normalize

import "regexp"

// SuffixRule matches one legal-entity designator at the very end of a name.
type SuffixRule struct {
	Name string // e.g. "Inc"
	re   *regexp.Regexp
}

// suffix anchors pattern to the end of the name. The token must start the
// string or follow a character that is not a Unicode letter, digit or
// underscore, so "Caféco" keeps its "co".
func suffix(name, pattern string) SuffixRule {
	return SuffixRule{Name: name, re: regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}_])(` + pattern + `)$`)}
}

// suffixRules is applied in this order on every pass. Shorter forms come
// first; "Co" cannot eat "Corp" or "Company" because each rule is end-anchored.
var suffixRules = []SuffixRule{
	suffix("Inc", `Inc\.?`),
	suffix("Co", `Co\.?`),
	suffix("Corp", `Corp\.?`),
	suffix("LLC", `LLC`),
	suffix("Ltd", `Ltd\.?`),
	suffix("Limited", `Limited`),
	suffix("PLC", `PLC`),
	suffix("L.P.", `L\.?P\.?`),
	suffix("L.L.C.", `L\.?L\.?C\.?`),
	suffix("P.C.", `P\.?C\.?`),
	suffix("Company", `Company`),
	suffix("Corporation", `Corporation`),
	suffix("Incorporated", `Incorporated`),
}

// SuffixRules returns the rule names in application order.
func SuffixRules() []string {
	names := make([]string, len(suffixRules))
	for i, r := range suffixRules {
		names[i] = r.Name
	}
	return names
}

// strip removes the matched suffix token, leaving any whitespace or
// punctuation before it in place.
func (r SuffixRule) strip(s string) string {
	loc := r.re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[2]]
}
