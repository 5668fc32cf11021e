package symbolic

import (
	"go/types"

	"github.com/ajalab/smtvar/smt"
	"github.com/pkg/errors"
)

// FunctionDeclaration is a callable symbol. It is declared once, under its
// name as given, and has no SSA versions.
type FunctionDeclaration struct {
	name string
	sort *smt.FunctionSort
	decl smt.Function
}

// DeclareFunction declares a function whose signature is the Go type ty.
// A receiver, if any, becomes the first parameter.
func DeclareFunction(ty types.Type, name string, solver smt.Solver) (*FunctionDeclaration, error) {
	if got := CategoryOf(ty); got != Function {
		return nil, &TypeCategoryMismatchError{Type: ty, Want: Function, Got: got}
	}
	sort, err := SortOf(ty)
	if err != nil {
		return nil, errors.Wrapf(err, "function %s", name)
	}
	return DeclareSort(sort.(*smt.FunctionSort), name, solver)
}

// Declare declares a function from its parameter and result types.
func Declare(params []types.Type, result types.Type, name string, solver smt.Solver) (*FunctionDeclaration, error) {
	sort, err := functionSort(params, result)
	if err != nil {
		return nil, errors.Wrapf(err, "function %s", name)
	}
	return DeclareSort(sort, name, solver)
}

// DeclareSort declares a function with an already resolved sort.
func DeclareSort(sort *smt.FunctionSort, name string, solver smt.Solver) (*FunctionDeclaration, error) {
	decl, err := solver.DeclareFunction(name, sort)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to declare function %s", name)
	}
	return &FunctionDeclaration{
		name: name,
		sort: sort,
		decl: decl,
	}, nil
}

// Name returns the declared name.
func (f *FunctionDeclaration) Name() string { return f.name }

// Sort returns the declared signature.
func (f *FunctionDeclaration) Sort() *smt.FunctionSort { return f.sort }

// Arity returns the number of parameters.
func (f *FunctionDeclaration) Arity() int { return f.sort.Arity() }

// Apply applies the declaration to args.
func (f *FunctionDeclaration) Apply(args ...smt.Expression) (smt.Expression, error) {
	if len(args) != f.sort.Arity() {
		return nil, &ArityMismatchError{Name: f.name, Want: f.sort.Arity(), Got: len(args)}
	}
	return f.decl.Apply(args...)
}
