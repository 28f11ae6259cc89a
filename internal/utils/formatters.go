// Файл: Carrytome/internal/utils/formatters.go
package utils

import "strings"

// EscapeTelegramMarkdown экранирует специальные символы для "легаси" Markdown.
func EscapeTelegramMarkdown(text string) string {
	var replacer = strings.NewReplacer(
		"_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[",
	)
	return replacer.Replace(text)
}

// TruncateString обрезает строку до maxLen рун, добавляя многоточие.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
