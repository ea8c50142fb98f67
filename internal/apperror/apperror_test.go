// internal/apperror/apperror_test.go
//
// Run: go test ./internal/apperror -v

package apperror

import (
	"errors"
	"testing"
)

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{"NotFound wraps ErrNotFound", NotFound("no existe"), ErrNotFound, true},
		{"ValidationFailed wraps ErrValidation", ValidationFailed("subdomain", "muy corto"), ErrValidation, true},
		{"NameTaken wraps ErrNameTaken", NameTaken("en uso"), ErrNameTaken, true},
		{"Persistence wraps ErrPersistence", Persistence("no se pudo guardar"), ErrPersistence, true},
		{"NotFound does not match ErrValidation", NotFound("no existe"), ErrValidation, false},
		{"Persistence does not match ErrNotFound", Persistence("x"), ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.wantMatch {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.wantMatch)
			}
		})
	}
}

func TestMessageIsUserFacing(t *testing.T) {
	err := ValidationFailed("subdomain", "El nombre debe tener al menos 3 caracteres.")
	if err.Error() != "El nombre debe tener al menos 3 caracteres." {
		t.Fatalf("Error() = %q", err.Error())
	}
	if err.Field != "subdomain" {
		t.Fatalf("Field = %q", err.Field)
	}
}
