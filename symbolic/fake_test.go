package symbolic

import (
	"fmt"
	"go/token"
	"go/types"
	"strings"

	"github.com/ajalab/smtvar/smt"
)

// declaration is one (name, sort) pair seen by fakeSolver.
type declaration struct {
	name string
	sort smt.Sort
}

type fakeExpr struct {
	text string
	sort smt.Sort
}

func (e *fakeExpr) Sort() smt.Sort  { return e.sort }
func (e *fakeExpr) String() string { return e.text }

type fakeFunc struct {
	name string
	sort *smt.FunctionSort
}

func (f *fakeFunc) Name() string             { return f.name }
func (f *fakeFunc) Sort() *smt.FunctionSort { return f.sort }

func (f *fakeFunc) Apply(args ...smt.Expression) (smt.Expression, error) {
	ss := make([]string, len(args))
	for i, a := range args {
		ss[i] = a.String()
	}
	return &fakeExpr{
		text: fmt.Sprintf("(%s %s)", f.name, strings.Join(ss, " ")),
		sort: f.sort.Result(),
	}, nil
}

// fakeSolver records every declaration request without a real solver.
type fakeSolver struct {
	decls []declaration
	err   error
}

func (s *fakeSolver) DeclareVariable(name string, sort smt.Sort) (smt.Expression, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.decls = append(s.decls, declaration{name, sort})
	return &fakeExpr{text: name, sort: sort}, nil
}

func (s *fakeSolver) DeclareFunction(name string, sort *smt.FunctionSort) (smt.Function, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.decls = append(s.decls, declaration{name, sort})
	return &fakeFunc{name: name, sort: sort}, nil
}

func (s *fakeSolver) names() []string {
	names := make([]string, len(s.decls))
	for i, d := range s.decls {
		names[i] = d.name
	}
	return names
}

var (
	tBool   = types.Typ[types.Bool]
	tInt    = types.Typ[types.Int]
	tUint8  = types.Typ[types.Uint8]
	tString = types.Typ[types.String]

	mapIntBool   = types.NewMap(tInt, tBool)
	mapIntString = types.NewMap(tInt, tString)
)

func sig(params []types.Type, results ...types.Type) *types.Signature {
	return types.NewSignatureType(nil, nil, nil, tuple(params...), tuple(results...), false)
}

func tuple(ts ...types.Type) *types.Tuple {
	vars := make([]*types.Var, len(ts))
	for i, t := range ts {
		vars[i] = types.NewParam(token.NoPos, nil, fmt.Sprintf("p%d", i), t)
	}
	return types.NewTuple(vars...)
}
