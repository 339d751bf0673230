package errors

import (
	"strings"
	"unicode"
)

// ValidateGuestName validates a guest name from an external file.
// Graph construction only requires non-empty names; file imports apply these
// stricter rules so a malformed or hostile guest file fails early with a
// useful message instead of producing confusing output downstream.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No leading or trailing whitespace
//   - Maximum length of 128 characters
func ValidateGuestName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidGuest, "guest name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidGuest, "guest name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGuest, "guest name contains invalid control characters")
		}
	}

	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidGuest, "guest name cannot have leading or trailing whitespace: %q", name)
	}

	return nil
}

// ValidateFormat checks an output format identifier against the supported set.
func ValidateFormat(format string, supported []string) error {
	for _, s := range supported {
		if format == s {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(supported, ", "))
}
