package dashboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoSubject is returned when an action needs a modal subject but the
// modal is closed.
var ErrNoSubject = errors.New("no player selected")

// ValidationError is a local, pre-submit rejection of operator input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Required rejects blank values.
func Required(field, value, message string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: message}
	}
	return nil
}

// PositiveInt parses raw as an integer greater than zero.
func PositiveInt(field, raw, message string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, &ValidationError{Field: field, Message: message}
	}
	return n, nil
}

// OptionalNonNegative parses raw as a number >= 0; blank is zero.
func OptionalNonNegative(field, raw, message string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return 0, &ValidationError{Field: field, Message: message}
	}
	return f, nil
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// truncate shortens s to n runes, appending "..." when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
