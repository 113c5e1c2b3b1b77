package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
	emailPattern   = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
)

// SanitizeString trims whitespace and drops control characters.
// Output is stored as-is and rendered by the front end, so no HTML escaping happens here.
func SanitizeString(input string) string {
	return removeControlChars(strings.TrimSpace(input))
}

// SanitizeOptional applies SanitizeString to an optional value.
func SanitizeOptional(input *string) *string {
	if input == nil {
		return nil
	}
	sanitized := SanitizeString(*input)
	return &sanitized
}

// SanitizeEmail sanitizes email input
func SanitizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	email = stripHTML(email)
	return removeControlChars(email)
}

// SanitizePhone sanitizes phone number input
func SanitizePhone(phone string) string {
	phone = stripHTML(strings.TrimSpace(phone))

	// Keep digits, plus, dash, space and parentheses
	var result strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) || r == '+' || r == '-' || r == ' ' || r == '(' || r == ')' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

// SanitizeText sanitizes multi-line text input
func SanitizeText(input string) string {
	trimmed := strings.TrimSpace(input)

	var result strings.Builder
	for _, r := range trimmed {
		if unicode.IsPrint(r) || r == '\n' || r == '\t' || r == '\r' {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// SanitizeOptionalText applies SanitizeText to an optional value.
func SanitizeOptionalText(input *string) *string {
	if input == nil {
		return nil
	}
	sanitized := SanitizeText(*input)
	return &sanitized
}

// SanitizeOptionalEmail applies SanitizeEmail to an optional value.
func SanitizeOptionalEmail(input *string) *string {
	if input == nil {
		return nil
	}
	sanitized := SanitizeEmail(*input)
	return &sanitized
}

// SanitizeOptionalPhone applies SanitizePhone to an optional value.
func SanitizeOptionalPhone(input *string) *string {
	if input == nil {
		return nil
	}
	sanitized := SanitizePhone(*input)
	return &sanitized
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(strings.ToLower(email)))
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
