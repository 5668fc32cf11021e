package symbolic

import (
	"go/types"

	"github.com/ajalab/smtvar/smt"
	"github.com/pkg/errors"
	"golang.org/x/tools/go/types/typeutil"
)

// Category is the coarse classification of a Go type that decides its
// symbolic encoding.
type Category int

const (
	// Other is any type without a symbolic encoding.
	Other Category = iota
	// Bool is the boolean category.
	Bool
	// Number is the category of all integer types.
	Number
	// Mapping is the category of map types.
	Mapping
	// Function is the category of function signatures.
	Function
)

func (c Category) String() string {
	switch c {
	case Bool:
		return "bool"
	case Number:
		return "number"
	case Mapping:
		return "mapping"
	case Function:
		return "function"
	}
	return "other"
}

// CategoryOf classifies ty by its underlying type.
func CategoryOf(ty types.Type) Category {
	switch ty := ty.Underlying().(type) {
	case *types.Basic:
		info := ty.Info()
		switch {
		case info&types.IsBoolean > 0:
			return Bool
		case info&types.IsInteger > 0:
			return Number
		}
	case *types.Map:
		return Mapping
	case *types.Signature:
		return Function
	}
	return Other
}

// SortOf returns the solver sort denoted by ty.
// Integer widths are not reflected in the sort; bounding a value to its
// width is left to the caller.
func SortOf(ty types.Type) (smt.Sort, error) {
	switch CategoryOf(ty) {
	case Bool:
		return smt.Bool, nil
	case Number:
		return smt.Int, nil
	case Mapping:
		m := ty.Underlying().(*types.Map)
		domain, err := SortOf(m.Key())
		if err != nil {
			return nil, errors.Wrapf(err, "key of %v", ty)
		}
		range_, err := SortOf(m.Elem())
		if err != nil {
			return nil, errors.Wrapf(err, "value of %v", ty)
		}
		return smt.NewArraySort(domain, range_), nil
	case Function:
		sort, err := signatureSort(ty, ty.Underlying().(*types.Signature))
		if err != nil {
			return nil, err
		}
		return sort, nil
	}
	return nil, &UnsupportedTypeError{Type: ty}
}

func signatureSort(ty types.Type, sig *types.Signature) (*smt.FunctionSort, error) {
	results := sig.Results()
	if results.Len() != 1 {
		return nil, &UnsupportedTypeError{
			Type:   ty,
			Reason: "functions must have exactly one result",
		}
	}
	var paramTypes []types.Type
	if recv := sig.Recv(); recv != nil {
		paramTypes = append(paramTypes, recv.Type())
	}
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		paramTypes = append(paramTypes, params.At(i).Type())
	}
	return functionSort(paramTypes, results.At(0).Type())
}

func functionSort(paramTypes []types.Type, resultType types.Type) (*smt.FunctionSort, error) {
	params := make([]smt.Sort, len(paramTypes))
	for i, pt := range paramTypes {
		s, err := SortOf(pt)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %d", i)
		}
		params[i] = s
	}
	result, err := SortOf(resultType)
	if err != nil {
		return nil, errors.Wrap(err, "result")
	}
	return smt.NewFunctionSort(params, result), nil
}

type sortEntry struct {
	sort smt.Sort
	err  error
}

// SortCache memoizes SortOf by type identity.
// The zero value is ready to use.
type SortCache struct {
	m typeutil.Map
}

// SortOf returns SortOf(ty), computing it at most once per identical type.
func (c *SortCache) SortOf(ty types.Type) (smt.Sort, error) {
	if e, ok := c.m.At(ty).(*sortEntry); ok {
		return e.sort, e.err
	}
	s, err := SortOf(ty)
	c.m.Set(ty, &sortEntry{sort: s, err: err})
	return s, err
}

// Len returns the number of memoized types.
func (c *SortCache) Len() int {
	return c.m.Len()
}
