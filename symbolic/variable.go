// Package symbolic encodes typed Go variables as versioned solver symbols.
//
// A Variable binds a session-unique base name to a type and declares one
// solver constant per SSA version, named base_index. A FunctionDeclaration
// is the unversioned counterpart for callable symbols.
//
// Nothing in this package is safe for concurrent use; an encoding session
// is driven by a single goroutine.
package symbolic

import (
	"go/types"

	"github.com/ajalab/smtvar/smt"
	"github.com/pkg/errors"
)

// Variable is a symbolic storage slot of category Bool, Number or Mapping.
type Variable struct {
	ty     types.Type
	name   string
	kind   Category
	sort   smt.Sort
	ssa    Counter
	solver smt.Solver
}

// NewBool returns a symbolic variable for a boolean-typed source variable.
func NewBool(ty types.Type, name string, solver smt.Solver) (*Variable, error) {
	return newVariable(Bool, ty, name, solver)
}

// NewInt returns a symbolic variable for an integer-typed source variable.
func NewInt(ty types.Type, name string, solver smt.Solver) (*Variable, error) {
	return newVariable(Number, ty, name, solver)
}

// NewMapping returns a symbolic variable for a map-typed source variable.
// Its versions are arrays from the key sort to the value sort.
func NewMapping(ty types.Type, name string, solver smt.Solver) (*Variable, error) {
	return newVariable(Mapping, ty, name, solver)
}

// New returns a symbolic variable of the variant selected by the category
// of ty. Types without a storage variant yield *UnsupportedTypeError.
func New(ty types.Type, name string, solver smt.Solver) (*Variable, error) {
	switch c := CategoryOf(ty); c {
	case Bool, Number, Mapping:
		return newVariable(c, ty, name, solver)
	case Function:
		return nil, &UnsupportedTypeError{Type: ty, Reason: "functions are declared, not stored"}
	}
	return nil, &UnsupportedTypeError{Type: ty}
}

func newVariable(kind Category, ty types.Type, name string, solver smt.Solver) (*Variable, error) {
	if got := CategoryOf(ty); got != kind {
		return nil, &TypeCategoryMismatchError{Type: ty, Want: kind, Got: got}
	}
	sort, err := SortOf(ty)
	if err != nil {
		return nil, errors.Wrapf(err, "variable %s", name)
	}
	return &Variable{
		ty:     ty,
		name:   name,
		kind:   kind,
		sort:   sort,
		solver: solver,
	}, nil
}

// Type returns the source type.
func (v *Variable) Type() types.Type { return v.ty }

// BaseName returns the session-unique name all versions are derived from.
func (v *Variable) BaseName() string { return v.name }

// Kind returns the category the variable was constructed for.
func (v *Variable) Kind() Category { return v.kind }

// Sort returns the solver sort of every version.
func (v *Variable) Sort() smt.Sort { return v.sort }

// SSA returns the version counter.
func (v *Variable) SSA() *Counter { return &v.ssa }

// Index returns the current SSA version.
func (v *Variable) Index() int { return v.ssa.Index() }

// Advance moves to a fresh SSA version and returns it.
func (v *Variable) Advance() int { return v.ssa.Advance() }

// CurrentName returns the symbol name of the current version.
func (v *Variable) CurrentName() string { return Name(v.name, v.ssa.Index()) }

// NameAt returns the symbol name of version index.
func (v *Variable) NameAt(index int) string { return Name(v.name, index) }

// CurrentValue declares and returns the symbol of the current version.
func (v *Variable) CurrentValue() (smt.Expression, error) {
	return v.ValueAtIndex(v.ssa.Index())
}

// ValueAtIndex declares and returns the symbol of version index.
// index must be a version the variable has already reached, or the next
// one when declaring it ahead of Advance.
func (v *Variable) ValueAtIndex(index int) (smt.Expression, error) {
	name := v.NameAt(index)
	e, err := v.solver.DeclareVariable(name, v.sort)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to declare %s", name)
	}
	return e, nil
}
