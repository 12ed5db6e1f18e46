package meetsetup

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDate               = errors.New("invalid date")
	ErrInvalidTime               = errors.New("invalid time")
	ErrInvalidValue              = errors.New("invalid value")
	ErrUnknownVariant            = errors.New("unknown variant")
	ErrInvalidDistance           = errors.New("distance does not exist")
	ErrIndistinguishableDistance = errors.New("cannot uniquely identify the distance")
	ErrAgeNotJunior              = errors.New("age is outside the junior range 9..19")
	ErrInvalidHandicapStyleGroup = errors.New("invalid handicap style group")
	ErrInvalidDisabilityGrade    = errors.New("disability grade must be between 1 and 15")
	ErrInvalidStrLen             = errors.New("invalid string length")
	ErrInvalidGender             = errors.New("invalid gender character")
	ErrInvalidClass              = errors.New("invalid class")
	ErrNotJuniorVariant          = errors.New("class is not a junior class")
	ErrNoJuniorBirthYear         = errors.New("junior class has no birth year")
	ErrMissingField              = errors.New("missing field")
	ErrUnknownField              = errors.New("unknown field")
	ErrDuplicateField            = errors.New("duplicate field")
)

// ValueError reports a malformed primitive or composite token. Kind is one
// of the sentinel errors above, Err an optional underlying cause.
type ValueError struct {
	Kind     error
	Input    string
	Expected string
	Err      error
}

func (e *ValueError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v %q", e.Kind, e.Input)
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	if e.Expected != "" {
		fmt.Fprintf(&sb, ", expected %s", e.Expected)
	}
	return sb.String()
}

func (e *ValueError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

type UnknownVariantError struct {
	Input   string
	Allowed []string
}

func (e *UnknownVariantError) Error() string {
	quoted := make([]string, len(e.Allowed))
	for i, a := range e.Allowed {
		quoted[i] = fmt.Sprintf("%q", a)
	}
	return fmt.Sprintf("unknown variant %q, expected one of %s", e.Input, strings.Join(quoted, ", "))
}

func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// DecodeError attributes a failure to one field of one record.
type DecodeError struct {
	Record string
	Field  string
	Input  string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Record, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func invalid(kind error, input, expected string, cause error) error {
	return &ValueError{Kind: kind, Input: input, Expected: expected, Err: cause}
}

// listError locates a failing item in a repeated element, counting from 1.
type listError struct {
	Name  string
	Index int
	Err   error
}

func (e *listError) Error() string {
	return fmt.Sprintf("%s #%d: %v", e.Name, e.Index+1, e.Err)
}

func (e *listError) Unwrap() error {
	return e.Err
}
