package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/iudanet/gophsave/internal/models"
)

// ErrEmptySave возвращается для пустого или отсутствующего сохранения
var ErrEmptySave = errors.New("save data is empty")

// ValidationError describes the first field of a save that is not a number
type ValidationError struct {
	Field string
	Index int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("save field %d is not a number: %q", e.Index, e.Field)
}

var (
	// decimalPattern десятичная запись числа: 12, -1.5, .5, 5., 1e10
	decimalPattern = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)
	// radixPattern целые литералы с префиксом основания, знак не допускается
	radixPattern = regexp.MustCompile(`^0(?:[xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// ValidateSave reports whether blob is a well-formed save.
// A save is valid iff it is non-empty and every comma-separated field
// converts to a number (browser Number() rules, so a blank field is 0).
func ValidateSave(blob models.SaveBlob) bool {
	return ValidateSaveErr(blob) == nil
}

// ValidateSaveErr is ValidateSave returning the reason of the rejection.
// Returns ErrEmptySave or *ValidationError.
func ValidateSaveErr(blob models.SaveBlob) error {
	if blob.IsEmpty() {
		return ErrEmptySave
	}

	for i, field := range blob.Fields() {
		if !isNumber(field) {
			return &ValidationError{Index: i, Field: field}
		}
	}

	return nil
}

// isNumber повторяет поведение Number(field) !== NaN
func isNumber(field string) bool {
	s := strings.TrimSpace(field)
	if s == "" {
		return true
	}

	switch s {
	case "Infinity", "+Infinity", "-Infinity":
		return true
	}

	return decimalPattern.MatchString(s) || radixPattern.MatchString(s)
}
