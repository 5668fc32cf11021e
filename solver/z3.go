// Package solver binds the symbolic layer to the Z3 theorem prover.
package solver

import (
	"strings"

	"github.com/aclements/go-z3/z3"
	"github.com/ajalab/smtvar/log"
	"github.com/ajalab/smtvar/smt"
	"github.com/pkg/errors"
)

// Z3Solver is an smt.Solver that declares symbols in a Z3 context.
type Z3Solver struct {
	ctx    *z3.Context
	consts map[string]*Expr
	funcs  map[string]*Func
	sorts  map[string]z3.Sort
}

// NewZ3Solver returns a Z3Solver over a fresh context.
func NewZ3Solver() *Z3Solver {
	return &Z3Solver{
		ctx:    z3.NewContext(nil),
		consts: make(map[string]*Expr),
		funcs:  make(map[string]*Func),
		sorts:  make(map[string]z3.Sort),
	}
}

// Context returns the underlying Z3 context.
func (s *Z3Solver) Context() *z3.Context {
	return s.ctx
}

// Len returns the number of declared symbols.
func (s *Z3Solver) Len() int {
	return len(s.consts) + len(s.funcs)
}

// Expr is a Z3 term together with its smt sort.
type Expr struct {
	value z3.Value
	sort  smt.Sort
	text  string
}

// Value returns the native Z3 value.
func (e *Expr) Value() z3.Value { return e.value }

// Sort returns the smt sort of the term.
func (e *Expr) Sort() smt.Sort { return e.sort }

func (e *Expr) String() string { return e.text }

// Func is a Z3 function declaration.
type Func struct {
	decl z3.FuncDecl
	name string
	sort *smt.FunctionSort
}

// Name returns the declared name.
func (f *Func) Name() string { return f.name }

// Sort returns the declared signature.
func (f *Func) Sort() *smt.FunctionSort { return f.sort }

// Apply applies f to args, which must be Exprs of the same solver.
func (f *Func) Apply(args ...smt.Expression) (smt.Expression, error) {
	if len(args) != f.sort.Arity() {
		return nil, errors.Errorf("%s: %d arguments given, %d expected", f.name, len(args), f.sort.Arity())
	}
	values := make([]z3.Value, len(args))
	texts := make([]string, len(args)+1)
	texts[0] = smt.QuoteSymbol(f.name)
	for i, a := range args {
		e, ok := a.(*Expr)
		if !ok {
			return nil, errors.Errorf("%s: argument %d (%v) is not a Z3 expression: %T", f.name, i, a, a)
		}
		if !smt.Equal(e.sort, f.sort.Param(i)) {
			return nil, errors.Errorf("%s: argument %d (%v) has sort %v, expected %v", f.name, i, a, e.sort, f.sort.Param(i))
		}
		values[i] = e.value
		texts[i+1] = e.text
	}
	text := texts[0]
	if len(args) > 0 {
		text = "(" + strings.Join(texts, " ") + ")"
	}
	return &Expr{
		value: f.decl.Apply(values...),
		sort:  f.sort.Result(),
		text:  text,
	}, nil
}

func (s *Z3Solver) declared(name string) (smt.Sort, bool) {
	if e, ok := s.consts[name]; ok {
		return e.sort, true
	}
	if f, ok := s.funcs[name]; ok {
		return f.sort, true
	}
	return nil, false
}

// z3Sort translates sort, reusing translations by their SMT-LIB notation.
func (s *Z3Solver) z3Sort(sort smt.Sort) (zs z3.Sort, err error) {
	key := sort.String()
	if zs, ok := s.sorts[key]; ok {
		return zs, nil
	}
	switch sort := sort.(type) {
	case *smt.ArraySort:
		domain, err := s.z3Sort(sort.Domain())
		if err != nil {
			return zs, err
		}
		range_, err := s.z3Sort(sort.Range())
		if err != nil {
			return zs, err
		}
		zs = s.ctx.ArraySort(domain, range_)
	case *smt.FunctionSort:
		return zs, errors.Errorf("function sort %v is not a value sort", sort)
	default:
		switch sort.Kind() {
		case smt.KindBool:
			zs = s.ctx.BoolSort()
		case smt.KindInt:
			zs = s.ctx.IntSort()
		default:
			return zs, errors.Errorf("unknown sort %v", sort)
		}
	}
	s.sorts[key] = zs
	return zs, nil
}

// DeclareVariable declares a Z3 constant.
func (s *Z3Solver) DeclareVariable(name string, sort smt.Sort) (smt.Expression, error) {
	if err := smt.CheckSymbol(name); err != nil {
		return nil, err
	}
	if e, ok := s.consts[name]; ok && smt.Equal(e.sort, sort) {
		return e, nil
	}
	if prev, ok := s.declared(name); ok {
		return nil, &smt.RedeclarationError{Name: name, Previous: prev, Sort: sort}
	}
	zs, err := s.z3Sort(sort)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to declare %s", name)
	}
	e := &Expr{
		value: s.ctx.Const(name, zs),
		sort:  sort,
		text:  smt.QuoteSymbol(name),
	}
	s.consts[name] = e
	log.Debug.Printf("z3: declare-const %s %v", name, sort)
	return e, nil
}

// DeclareFunction declares a Z3 uninterpreted function.
func (s *Z3Solver) DeclareFunction(name string, sort *smt.FunctionSort) (smt.Function, error) {
	if err := smt.CheckSymbol(name); err != nil {
		return nil, err
	}
	if f, ok := s.funcs[name]; ok && smt.Equal(f.sort, sort) {
		return f, nil
	}
	if prev, ok := s.declared(name); ok {
		return nil, &smt.RedeclarationError{Name: name, Previous: prev, Sort: sort}
	}
	domain := make([]z3.Sort, sort.Arity())
	for i := range domain {
		zs, err := s.z3Sort(sort.Param(i))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to declare function %s", name)
		}
		domain[i] = zs
	}
	range_, err := s.z3Sort(sort.Result())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to declare function %s", name)
	}
	f := &Func{
		decl: s.ctx.FuncDecl(name, domain, range_),
		name: name,
		sort: sort,
	}
	s.funcs[name] = f
	log.Debug.Printf("z3: declare-fun %s %v", name, sort)
	return f, nil
}
