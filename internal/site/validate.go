// internal/site/validate.go
//
// Site-name (subdomain) validation.
//
// Context
// -------
// The site name doubles as the DNS label the site is served under, so
// the rules are strict: lowercase letters, digits, and hyphens only,
// minimum three characters.  Sanitize is the shared lowering/stripping
// step; ValidateName rejects any input that sanitising would have
// altered rather than silently renaming what the user typed.
package site

import (
	"strings"

	"github.com/gestularia/gestularia/internal/apperror"
)

// MinNameLen is the shortest acceptable site name.
const MinNameLen = 3

// Sanitize lowercases the input and strips every character outside
// [a-z0-9-].  It never errors; use ValidateName to reject input.
func Sanitize(raw string) string {
	lowered := strings.ToLower(raw)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateName returns the canonical name, or a validation error when
// the input is too short or differs from its sanitized form in any
// way.  Uppercase is rejected rather than folded; what the user typed
// is exactly the label the site will be served under.
func ValidateName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	clean := Sanitize(trimmed)
	if clean != trimmed {
		return "", apperror.ValidationFailed("name", "Solo se permiten letras minúsculas, números y guiones.")
	}
	if len(clean) < MinNameLen {
		return "", apperror.ValidationFailed("name", "El nombre debe tener al menos 3 caracteres.")
	}
	return clean, nil
}
