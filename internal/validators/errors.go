package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every rule violation below.
var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoFieldsToUpdate = fmt.Errorf("%w: at least one field must be provided for update", ErrValidation)
	ErrTitleTooLong     = fmt.Errorf("%w: title is too long", ErrValidation)
	ErrContentTooLong   = fmt.Errorf("%w: content is too long", ErrValidation)
	ErrInvalidUTF8      = fmt.Errorf("%w: text is not valid UTF-8", ErrValidation)
)
