package service

import (
	"strings"
	"unicode"

	apperrors "project-tracker-backend/internal/errors"
)

// timeFormat is the timestamp layout used in API responses
const timeFormat = "2006-01-02T15:04:05Z07:00"

// DeletePayload is the result of a delete mutation. Domain failures are
// payload errors, never transport errors.
type DeletePayload struct {
	Success bool                   `json:"success"`
	Errors  []apperrors.FieldError `json:"errors"`
}

func deleteFailure(field, message string) *DeletePayload {
	return &DeletePayload{
		Success: false,
		Errors:  []apperrors.FieldError{{Field: field, Message: message}},
	}
}

// slugify normalizes a slug input: lower-case, alphanumeric runs joined by
// single dashes, everything else stripped.
func slugify(s string) string {
	var b strings.Builder
	lastDash := true // suppress leading dash
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
