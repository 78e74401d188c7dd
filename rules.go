package trimdecode

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Gobd/trimdecode/transform"
)

var (
	// ErrBlank is returned by [NotBlank].
	ErrBlank = validation.NewError("validation_not_blank", "cannot be blank")
	// ErrNotTrimmed is returned by [Trimmed].
	ErrNotTrimmed = validation.NewError("validation_not_trimmed", "must not have leading or trailing whitespace")
)

// NotBlank checks that a string is present and not blank after trimming.
// Unlike validation.Required it rejects whitespace-only values, so it also
// holds for fields that were never passed through a trim.
// It accepts string kinds, pointers to them and [OptionalString].
var NotBlank = notBlankRule{err: ErrBlank}

type notBlankRule struct {
	err validation.Error
}

// Validate checks if the given value is valid or not.
func (r notBlankRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return r.err
	}
	s, err := validation.EnsureString(value)
	if err != nil {
		return err
	}
	if transform.Space(s) == "" {
		return r.err
	}
	return nil
}

// Error sets the error message for the rule.
func (r notBlankRule) Error(message string) notBlankRule {
	r.err = r.err.SetMessage(message)
	return r
}

// Trimmed checks that a string has no leading or trailing whitespace. Empty
// values pass; combine with validation.Required or [NotBlank] to reject them.
var Trimmed = validation.NewStringRuleWithError(func(s string) bool {
	return s == transform.Space(s)
}, ErrNotTrimmed)
