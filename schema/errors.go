package schema

import (
	"fmt"
	"strings"
)

func copyPaths(paths []string) []string {
	return append([]string(nil), paths...)
}

func NewStructureError(info string, paths []string) *StructureError {
	return &StructureError{info: info, paths: copyPaths(paths)}
}

func (err StructureError) Error() string {
	return fmt.Sprintf("StructureError %s, paths: %s", err.info, err.Path())
}

func (err StructureError) Path() string {
	return strings.Join(err.paths, "")
}

func NewMissingDiscriminatorError(paths []string) *MissingDiscriminatorError {
	return &MissingDiscriminatorError{paths: copyPaths(paths)}
}

func (err MissingDiscriminatorError) Error() string {
	return fmt.Sprintf("MissingDiscriminatorError expected one of allOf/oneOf/anyOf/not or a type keyword, paths: %s", err.Path())
}

func (err MissingDiscriminatorError) Path() string {
	return strings.Join(err.paths, "")
}

func NewFieldError(key string, expected string, paths []string) *FieldError {
	return &FieldError{key: key, expected: expected, paths: copyPaths(paths)}
}

func (err FieldError) Error() string {
	return fmt.Sprintf("FieldError %s must be %s, paths: %s", err.key, err.expected, err.Path())
}

func (err FieldError) Key() string {
	return err.key
}

func (err FieldError) Path() string {
	return strings.Join(err.paths, "")
}

func NewEncodingError(cause error) *EncodingError {
	return &EncodingError{cause: cause}
}

func (err EncodingError) Error() string {
	return fmt.Sprintf("EncodingError %s", err.cause)
}

func (err EncodingError) Unwrap() error {
	return err.cause
}

func NewReferenceError(ref string, info string) *ReferenceError {
	return &ReferenceError{ref: ref, info: info}
}

func (err ReferenceError) Error() string {
	return fmt.Sprintf("ReferenceError %s, ref: %s", err.info, err.ref)
}
