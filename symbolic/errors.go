package symbolic

import (
	"fmt"
	"go/types"
)

// UnsupportedTypeError reports a type that has no solver sort.
// Callers should skip verification of the variable rather than abort.
type UnsupportedTypeError struct {
	Type   types.Type
	Reason string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported type %v: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("unsupported type %v", e.Type)
}

// TypeCategoryMismatchError reports a variant constructed with a type of
// the wrong category. It indicates a bug in the caller.
type TypeCategoryMismatchError struct {
	Type types.Type
	Want Category
	Got  Category
}

func (e *TypeCategoryMismatchError) Error() string {
	return fmt.Sprintf("type %v has category %v, want %v", e.Type, e.Got, e.Want)
}

// ArityMismatchError reports a function applied to the wrong number of
// arguments.
type ArityMismatchError struct {
	Name string
	Want int
	Got  int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("function %s takes %d arguments, got %d", e.Name, e.Want, e.Got)
}
