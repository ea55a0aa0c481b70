package strings

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToSnakeCase converts CamelCase to snake_case
// Handles acronyms properly (HTTPRequest -> http_request)
func ToSnakeCase(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				// Add underscore before uppercase letter if:
				// 1. Previous char is lowercase or a digit
				// 2. Next char is lowercase (for acronyms like HTTPRequest -> http_request)
				if unicode.IsLower(prev) || unicode.IsDigit(prev) {
					result.WriteRune('_')
				} else if i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
					result.WriteRune('_')
				}
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// ToPascalCase converts snake_case, kebab-case and space separated words to
// PascalCase. Words that already carry inner capitals keep them (blogPost -> BlogPost).
func ToPascalCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var result strings.Builder
	for _, word := range words {
		runes := []rune(word)
		result.WriteRune(unicode.ToUpper(runes[0]))
		result.WriteString(string(runes[1:]))
	}
	return result.String()
}

// irregularPlurals maps singular words to their irregular plural form
var irregularPlurals = map[string]string{
	"person": "people",
	"child":  "children",
	"man":    "men",
	"woman":  "women",
	"tooth":  "teeth",
	"foot":   "feet",
	"mouse":  "mice",
	"goose":  "geese",
	"belief": "beliefs",
	"brief":  "briefs",
	"chef":   "chefs",
	"chief":  "chiefs",
	"proof":  "proofs",
	"roof":   "roofs",
}

// uncountableWords have the same singular and plural form
var uncountableWords = map[string]bool{
	"deer":        true,
	"equipment":   true,
	"feedback":    true,
	"fish":        true,
	"information": true,
	"metadata":    true,
	"news":        true,
	"series":      true,
	"sheep":       true,
	"species":     true,
}

// Pluralize returns the plural form of a word (simple implementation).
// Only the last word of a compound name is inflected (blog_person -> blog_people,
// BlogPerson -> BlogPeople). The case of the input is preserved: a capitalized
// word stays capitalized and an all-caps word stays all-caps (BOX -> BOXES).
func Pluralize(word string) string {
	if word == "" {
		return word
	}

	start := lastWordStart(word)
	plural := word[:start] + pluralizeWord(word[start:])
	if isAllUpper(word) {
		return strings.ToUpper(plural)
	}
	return plural
}

func pluralizeWord(word string) string {
	if word == "" {
		return word
	}

	lower := strings.ToLower(word)
	if uncountableWords[lower] {
		return word
	}
	if plural, ok := irregularPlurals[lower]; ok {
		if unicode.IsUpper([]rune(word)[0]) {
			return strings.ToUpper(plural[:1]) + plural[1:]
		}
		return plural
	}

	switch {
	case strings.HasSuffix(lower, "y"):
		if len(lower) > 1 && !isVowel(lower[len(lower)-2]) {
			return word[:len(word)-1] + "ies"
		}
		return word + "s"
	case strings.HasSuffix(lower, "s") || strings.HasSuffix(lower, "x") ||
		strings.HasSuffix(lower, "z") || strings.HasSuffix(lower, "ch") ||
		strings.HasSuffix(lower, "sh"):
		return word + "es"
	case strings.HasSuffix(lower, "ff"):
		return word + "s"
	case strings.HasSuffix(lower, "fe"):
		return word[:len(word)-2] + "ves"
	case strings.HasSuffix(lower, "f"):
		return word[:len(word)-1] + "ves"
	default:
		return word + "s"
	}
}

// lastWordStart returns the byte offset of the last word in a snake_case,
// kebab-case or CamelCase name. Word boundaries match ToSnakeCase.
func lastWordStart(s string) int {
	runes := []rune(s)
	start, offset := 0, 0

	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			start = offset + utf8.RuneLen(r)
		case i > 0 && unicode.IsUpper(r):
			prev := runes[i-1]
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				start = offset
			} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				start = offset
			}
		}
		offset += utf8.RuneLen(r)
	}

	return start
}

// isAllUpper reports whether s has more than one letter and no lowercase ones
func isAllUpper(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters > 1
}

func isVowel(b byte) bool {
	return strings.IndexByte("aeiou", b) >= 0
}
