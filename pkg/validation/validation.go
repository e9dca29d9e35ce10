package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// IsValidEmail validates email format
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsAlphanumeric reports whether s is a non-empty run of ASCII letters and digits
func IsAlphanumeric(s string) bool {
	return alphanumericRegex.MatchString(s)
}

// MaxLength reports whether s has at most max runes
func MaxLength(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}

// LengthBetween reports whether the rune count of s is within [min, max]
func LengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// ContainsAnyRune reports whether s contains any of the given runes
func ContainsAnyRune(s string, runes []rune) bool {
	for _, r := range runes {
		if strings.ContainsRune(s, r) {
			return true
		}
	}
	return false
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
