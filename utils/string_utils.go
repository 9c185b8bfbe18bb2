package utils

import (
	"strings"
	"unicode"
)

// Title converts the first letter of each word to uppercase and the rest to lowercase.
func Title(s string) string {
	return strings.Join(titleWords(strings.Fields(s)), " ")
}

func titleWords(words []string) []string {
	for i, word := range words {
		if len(word) == 0 {
			continue
		}
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		words[i] = string(runes)
	}
	return words
}

// PersonName cleans a display name typed by an admin: markup removed, inner
// whitespace collapsed, each word capitalized. Empty input gives nil.
func PersonName(name *string) *string {
	if name == nil {
		return nil
	}
	cleaned := Title(SanitizeString(*name))
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
