package utils

import "strings"

// ParseList splits delimited form input into an ordered list of values,
// trimming whitespace and dropping empty segments. Each form field declares
// its own delimiter; nothing is inferred from the input.
func ParseList(input, delimiter string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(input, delimiter) {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// ParseCommaList parses comma-delimited input (tech stacks, tools, skill items).
func ParseCommaList(input string) []string {
	return ParseList(input, ",")
}

// ParseLineList parses newline-delimited input (feature and achievement lists).
func ParseLineList(input string) []string {
	return ParseList(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
}
