package match

import (
	"strings"
	"unicode"
)

// Normalize folds an identifier to a canonical lowercase form without
// separators: "OrderID", "order_id" and "orderId" all become "orderid".
func Normalize(s string) string {
	return strings.Join(Tokens(s), "")
}

// Tokens splits a CamelCase, snake_case or kebab-case identifier into
// lowercase words. Acronyms stay whole: "XMLParser" yields "xml", "parser".
func Tokens(s string) []string {
	runes := []rune(s)

	var (
		tokens []string
		start  = -1
	)

	flush := func(end int) {
		if start >= 0 && end > start {
			tokens = append(tokens, strings.ToLower(string(runes[start:end])))
		}

		start = -1
	}

	for i, r := range runes {
		if r == '_' || r == '-' || r == ' ' {
			flush(i)
			continue
		}

		if start >= 0 && wordBoundary(runes, i) {
			flush(i)
		}

		if start < 0 {
			start = i
		}
	}

	flush(len(runes))

	return tokens
}

// wordBoundary reports whether a new word starts at runes[i].
func wordBoundary(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	if !unicode.IsUpper(runes[i-1]) {
		return true
	}

	// end of an acronym: "XMLParser" splits before 'P'
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
