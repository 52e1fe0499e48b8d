// FILE: lixenwraith/nestval/error.go
package nestval

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch matches every *TypeMismatchError under errors.Is.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrPathNotFound is returned by accessors when a path cannot be followed to completion.
	ErrPathNotFound = errors.New("path not found")

	// ErrEmptyDocument is returned when a document has no content to parse.
	ErrEmptyDocument = errors.New("empty document")

	// ErrUnknownFormat is returned when a document format cannot be determined.
	ErrUnknownFormat = errors.New("unknown document format")
)

const rootParam = "obj"

// TypeMismatchError reports a lookup argument of the wrong dynamic type.
// These are call-site mistakes; traversal itself never fails.
//
// Got keeps the exact tag. For path and pathSeparator the message names
// sequences and null as "object"; only the obj message tells them apart.
type TypeMismatchError struct {
	Param    string // "path", "pathSeparator" or "obj"
	Expected string // "a string" or "an object"
	Got      Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s parameter is not %s, but a %s", e.Param, e.Expected, e.typeName())
}

func (e *TypeMismatchError) typeName() string {
	if e.Param != rootParam && (e.Got == KindSequence || e.Got == KindNull) {
		return KindMapping.String()
	}
	return e.Got.String()
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func pathMismatch(got Kind) error {
	return &TypeMismatchError{Param: "path", Expected: "a string", Got: got}
}

func separatorMismatch(got Kind) error {
	return &TypeMismatchError{Param: "pathSeparator", Expected: "a string", Got: got}
}

func rootMismatch(got Kind) error {
	return &TypeMismatchError{Param: rootParam, Expected: "an object", Got: got}
}
