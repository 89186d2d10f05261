package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeIdent folds an identifier to a separator-free lowercase form:
// "listItem", "list-item" and "LIST_ITEM" all normalize to "listitem".
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into lowercase words.
//   - "HomePage" -> ["home", "page"]
//   - "XMLParser" -> ["xml", "parser"]
//   - "about_us-page" -> ["about", "us", "page"]
func TokenizeIdent(s string) []string {
	// Casers carry state and must not be shared between goroutines.
	lower := cases.Lower(language.Und)

	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = lower.String(t)
	}

	return tokens
}

// DashCase converts a mixed-case identifier to its dash-delimited
// lowercase form, used for output file names: "HomePage" -> "home-page".
// Characters that are neither letters, digits nor separators are kept
// inside their word.
func DashCase(s string) string {
	return strings.Join(TokenizeIdent(s), "-")
}

// tokenizeCamelCase splits on separators, lower-to-upper transitions and
// the end of acronyms, preserving the original case of each token.
func tokenizeCamelCase(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsWord reports whether runes[i] begins a new word.
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "homePage": lower (or digit) followed by upper.
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser": the last capital of an acronym starts the next word.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
