package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error holds per-field messages for a failed form submission.
// Fields are keyed by struct field name.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New()}
}

// Validate runs struct validation and maps failures to user-facing messages.
// The messages map is keyed "Field.tag" with a "Field" fallback.
func (v *Validator) Validate(s any, messages map[string]string) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, ok := fields[fe.Field()]; ok {
			continue
		}
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg, ok = messages[fe.Field()]
		}
		if !ok {
			msg = "Qiymat noto'g'ri kiritilgan"
		}
		fields[fe.Field()] = msg
	}

	return &Error{Fields: fields}
}

func (v *Validator) IsEmail(value string) bool {
	return v.v.Var(value, "required,email") == nil
}
