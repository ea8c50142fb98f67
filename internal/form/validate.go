// internal/form/validate.go
//
// Forms subsystem: server-side validation and sanitization.
//
// Context
//   The renderer outputs HTML containing a CSRF token.  When the browser
//   posts user input, this file verifies the submission: CSRF, required
//   fields, type constraints, regex patterns, option values, and length
//   limits.  It returns a sanitized map that the editor can trust.
//
// Workflow
//   •  ValidateForm retrieves the FormDef and checks CSRF before
//      per-field validation.
//   •  Each field is validated and sanitized by type.  Errors are
//      captured in []ErrorField so templates can highlight exact issues.
//   •  On success a map[string]string of clean values is returned.
//
//------------------------------------------------------------------------------

package form

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// -----------------------------------------------------------------------------
// Error types
// -----------------------------------------------------------------------------

// ErrorField describes a single validation failure so the template can
// render a field-level message.
type ErrorField struct {
	Name    string // field name
	Message string // user-facing message
}

// -----------------------------------------------------------------------------
// Public API
// -----------------------------------------------------------------------------

// ValidateForm validates posted form data (already parsed into
// url.Values) for formID.  It returns sanitized values and any field
// errors.  A non-empty error slice means UI re-render is required.
func ValidateForm(formID string, posted url.Values) (map[string]string, []ErrorField) {
	fd, ok := GetFormDef(formID)
	if !ok {
		return nil, []ErrorField{{Name: "", Message: "Formulario desconocido."}}
	}

	var errs []ErrorField
	clean := make(map[string]string)

	// Form-level check: CSRF.
	if !verifyCSRF(posted.Get("csrf_token")) {
		errs = append(errs, ErrorField{"", "Token de seguridad inválido.  Recarga la página e inténtalo de nuevo."})
		return nil, errs
	}

	// Per-field validation.
	for _, f := range fd.Fields {
		raw, present := extractValue(posted, &f)

		// Required
		if f.Required && (!present || strings.TrimSpace(raw) == "") {
			errs = append(errs, ErrorField{f.Name, requiredMsg(&f)})
			continue
		}
		// Empty optional – keep the empty string so callers can clear fields.
		if !present {
			continue
		}

		val, perr := validateAndSanitize(&f, raw)
		if perr != "" {
			errs = append(errs, ErrorField{f.Name, perr})
			continue
		}
		clean[f.Name] = val
	}

	return clean, errs
}

// VerifyRequestToken checks a bare CSRF token outside form validation
// (delete buttons and other single-action POSTs).
func VerifyRequestToken(token string) bool {
	return verifyCSRF(token)
}

// -----------------------------------------------------------------------------
// Form-level helpers
// -----------------------------------------------------------------------------

func verifyCSRF(token string) bool {
	return token != "" && VerifyToken(token)
}

// -----------------------------------------------------------------------------
// Field-level helpers
// -----------------------------------------------------------------------------

// extractValue obtains the raw submitted value for field f.
func extractValue(v url.Values, f *FieldDef) (string, bool) {
	raw, ok := v[f.Name]
	if !ok || len(raw) == 0 {
		return "", false
	}
	return raw[0], true
}

func validateAndSanitize(f *FieldDef, raw string) (string, string) {
	val := strings.TrimSpace(raw)

	switch f.Type {
	case "text", "textarea":
		if msg := lengthCheck(f, val); msg != "" {
			return "", msg
		}
		if f.Pattern != "" && val != "" && !regexMatch(f.Pattern, val) {
			return "", patternMsg(f)
		}
		return val, ""

	case "email":
		if _, err := mail.ParseAddress(val); err != nil {
			return "", invalidMsg(f)
		}
		return val, ""

	case "password":
		if msg := lengthCheck(f, val); msg != "" {
			return "", msg
		}
		return val, ""

	case "number":
		if _, err := strconv.ParseFloat(val, 64); err != nil {
			return "", invalidMsg(f)
		}
		return val, ""

	case "url":
		if val == "" {
			return "", ""
		}
		u, err := url.Parse(val)
		if err != nil || (u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https") {
			return "", invalidMsg(f)
		}
		return val, ""

	case "date":
		if _, err := time.Parse("2006-01-02", val); err != nil {
			return "", invalidMsg(f)
		}
		return val, ""

	case "checkbox":
		// Checked = "true", unchecked not present.
		return "true", ""

	case "select", "radio":
		if !optionAllowed(f.Options, val) {
			return "", invalidMsg(f)
		}
		return val, ""

	default:
		return "", fmt.Sprintf("Tipo de campo no soportado %q.", f.Type)
	}
}

// lengthCheck validates minlength / maxlength rules.
func lengthCheck(f *FieldDef, s string) string {
	n := len(s)
	if f.MinLength > 0 && n < f.MinLength {
		return fmt.Sprintf("Debe tener al menos %d caracteres.", f.MinLength)
	}
	if f.MaxLength > 0 && n > f.MaxLength {
		return fmt.Sprintf("Debe tener menos de %d caracteres.", f.MaxLength)
	}
	return ""
}

func regexMatch(pattern, s string) bool {
	re, _ := regexp.Compile(pattern) // pattern pre-validated at load
	return re.MatchString(s)
}

func optionAllowed(opts []string, v string) bool {
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}

// user-friendly default messages
func requiredMsg(f *FieldDef) string {
	if f.ErrorMsg != "" {
		return f.ErrorMsg
	}
	return "Este campo es obligatorio."
}
func invalidMsg(f *FieldDef) string {
	if f.ErrorMsg != "" {
		return f.ErrorMsg
	}
	return "Valor no válido."
}
func patternMsg(f *FieldDef) string {
	if f.ErrorMsg != "" {
		return f.ErrorMsg
	}
	return "El valor no tiene el formato requerido."
}
