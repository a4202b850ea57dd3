package common

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts a peripheral identifier to a lowercase,
// underscore-separated submodule name. Explicit separators ('_', '-',
// whitespace) and camel-case boundaries both count as word breaks, so
// "PortA", "Port-A" and "port a" all reduce to "port_a". Acronym runs
// collapse into a single word: "GPIOA" -> "gpioa", "SPI1" -> "spi1".
func ToSnakeCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// ToPascalCase converts a peripheral identifier to the struct-name form
// used in generated code ("port_a" -> "PortA").
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		b.WriteString(strings.ToUpper(w[:1]))
		if len(w) > 1 {
			b.WriteString(strings.ToLower(w[1:]))
		}
	}
	return b.String()
}

// ToKebabCase converts an identifier to the hyphen-separated form used for
// generated crate names ("PortA" -> "port-a", "STM32F303" -> "stm32f303").
func ToKebabCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// splitWords breaks an identifier on explicit separators and camel-case
// boundaries. An uppercase run followed by a lowercase letter ends one
// word before the run's last rune ("XMLParser" -> "XML", "Parser").
func splitWords(s string) []string {
	var words []string
	for _, chunk := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	}) {
		runes := []rune(chunk)
		start := 0
		for i := 1; i < len(runes); i++ {
			prevLower := unicode.IsLower(runes[i-1])
			curUpper := unicode.IsUpper(runes[i])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if curUpper && (prevLower || (nextLower && unicode.IsUpper(runes[i-1]))) {
				words = append(words, string(runes[start:i]))
				start = i
			}
		}
		words = append(words, string(runes[start:]))
	}
	return words
}

// IsModuleName reports whether s is usable as a generated submodule name:
// non-empty, lowercase letters, digits and underscores only, not starting
// with a digit.
func IsModuleName(s string) bool {
	if s == "" {
		return false
	}
	if s[0] >= '0' && s[0] <= '9' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' {
			continue
		}
		return false
	}
	return true
}
