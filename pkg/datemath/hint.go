package datemath

import (
	"regexp"
	"strings"
)

// hintPattern matches lightweight due-date expressions inside free text.
// Deliberately not a calendar parser: only the vocabulary Parse understands.
var hintPattern = regexp.MustCompile(
	`\b(today|tomorrow|yesterday|in \d+ (?:day|days|week|weeks|month|months)|next (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday))\b`,
)

// FindHint scans free text for a relative date expression. It returns
// the matched expression (suitable for Parse) and whether one was found.
func FindHint(text string) (string, bool) {
	match := hintPattern.FindString(strings.ToLower(text))
	if match == "" {
		return "", false
	}
	return match, true
}

// StripHint removes the first due-date expression (and a leading
// "by"/"on"/"due" connective, if any) from the text.
func StripHint(text string) string {
	lower := strings.ToLower(text)
	loc := hintPattern.FindStringIndex(lower)
	if loc == nil {
		return text
	}

	before := strings.TrimRight(text[:loc[0]], " ")
	after := strings.TrimLeft(text[loc[1]:], " ")

	for _, connective := range []string{" due by", " due on", " due", " by", " on"} {
		if strings.HasSuffix(strings.ToLower(before), connective) {
			before = strings.TrimRight(before[:len(before)-len(connective)], " ")
			break
		}
	}

	joined := strings.TrimSpace(before + " " + after)
	return joined
}
