package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeSearch prepares a free-text search term for a LIKE query
func SanitizeSearch(input string) string {
	search := strings.TrimSpace(input)
	search = stripHTML(search)
	search = removeControlChars(search)

	replacer := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return replacer.Replace(search)
}

// stripHTML removes HTML tags from string
func stripHTML(input string) string {
	return htmlTagPattern.ReplaceAllString(input, "")
}

// removeControlChars removes control characters from string
func removeControlChars(input string) string {
	var result strings.Builder
	for _, r := range input {
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}
