// Package util provides the naming transforms shared by every target
// emitter. The transforms are pure functions of a topic's semantic name;
// all emitters must agree on them so topic name, class name, constant
// name, and enum member round-trip consistently across outputs.
package util

import (
	"strings"
	"unicode"
)

// ToPascalCase converts kebab-case or snake_case to PascalCase.
// "specification-created" -> "SpecificationCreated"
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			runes := []rune(part)
			result.WriteRune(unicode.ToUpper(runes[0]))
			result.WriteString(string(runes[1:]))
		}
	}

	return result.String()
}

// ToConstName converts a kebab-case semantic name to SCREAMING_SNAKE_CASE.
// "specification-created" -> "SPECIFICATION_CREATED"
func ToConstName(s string) string {
	return strings.ReplaceAll(strings.ToUpper(s), "-", "_")
}

// ToTitleWords converts a kebab-case semantic name to spaced title case.
// "specification-created" -> "Specification Created"
func ToTitleWords(s string) string {
	parts := strings.Split(s, "-")
	for i, part := range parts {
		if len(part) > 0 {
			runes := []rune(strings.ToLower(part))
			runes[0] = unicode.ToUpper(runes[0])
			parts[i] = string(runes)
		}
	}
	return strings.Join(parts, " ")
}

// ToKebabCase converts PascalCase back to kebab-case, recovering the word
// sequence of the semantic name. Acronym runs stay together
// ("HTTPSConnection" -> "https-connection").
func ToKebabCase(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if i > 0 && r >= 'A' && r <= 'Z' {
			// No separator inside an acronym run unless the next char
			// starts a new lowercase word
			prevUpper := runes[i-1] >= 'A' && runes[i-1] <= 'Z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'

			if !prevUpper || nextLower {
				result.WriteRune('-')
			}
		}

		result.WriteRune(r)
	}

	return strings.ToLower(result.String())
}
