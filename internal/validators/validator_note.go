package validators

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-scripture-lens/models"
)

const (
	FieldTitle   = "title"
	FieldContent = "content"
	// FieldAny requires at least one of title and content to be present.
	FieldAny = "any"
)

const (
	MaxTitleLength   = 200
	MaxContentLength = 100_000
)

var defaultNoteFields = []string{FieldTitle, FieldContent}

type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate checks models.NoteFields. Without field names the title and
// content rules run; FieldAny must be requested explicitly.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteFields:
		return v.validateNoteFields(value, fields...)
	case *models.NoteFields:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNoteFields(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNoteFields(f models.NoteFields, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultNoteFields
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldTitle:
			errs = append(errs, validateText(f.Title, MaxTitleLength, ErrTitleTooLong))
		case FieldContent:
			errs = append(errs, validateText(f.Content, MaxContentLength, ErrContentTooLong))
		case FieldAny:
			if f.IsEmpty() {
				errs = append(errs, ErrNoFieldsToUpdate)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return errors.Join(errs...)
}

// validateText accepts a nil value: absent fields are left unchanged.
func validateText(s *string, max int, tooLong error) error {
	if s == nil {
		return nil
	}
	if !utf8.ValidString(*s) {
		return ErrInvalidUTF8
	}
	if utf8.RuneCountInString(*s) > max {
		return tooLong
	}
	return nil
}
