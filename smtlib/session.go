// Package smtlib is an smt.Solver that records declarations in order and
// renders them as an SMT-LIB 2 script.
package smtlib

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ajalab/smtvar/smt"
	"github.com/pkg/errors"
)

// Declaration is a declared symbol.
type Declaration struct {
	Name string
	Sort smt.Sort
}

// Session records the declarations of one encoding session.
type Session struct {
	decls []Declaration
	terms map[string]smt.Expression
	funcs map[string]*function
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{
		terms: make(map[string]smt.Expression),
		funcs: make(map[string]*function),
	}
}

type term struct {
	text string
	sort smt.Sort
}

func (t *term) Sort() smt.Sort  { return t.sort }
func (t *term) String() string { return t.text }

type function struct {
	name string
	sort *smt.FunctionSort
}

func (f *function) Name() string             { return f.name }
func (f *function) Sort() *smt.FunctionSort { return f.sort }

func (f *function) Apply(args ...smt.Expression) (smt.Expression, error) {
	if len(args) != f.sort.Arity() {
		return nil, errors.Errorf("%s: %d arguments given, %d expected", f.name, len(args), f.sort.Arity())
	}
	if len(args) == 0 {
		return &term{text: smt.QuoteSymbol(f.name), sort: f.sort.Result()}, nil
	}
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(smt.QuoteSymbol(f.name))
	for i, a := range args {
		if !smt.Equal(a.Sort(), f.sort.Param(i)) {
			return nil, errors.Errorf("%s: argument %d (%v) has sort %v, expected %v", f.name, i, a, a.Sort(), f.sort.Param(i))
		}
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return &term{text: b.String(), sort: f.sort.Result()}, nil
}

// lookup returns the sort name is declared with, if any.
func (s *Session) lookup(name string) (smt.Sort, bool) {
	if t, ok := s.terms[name]; ok {
		return t.Sort(), true
	}
	if f, ok := s.funcs[name]; ok {
		return f.sort, true
	}
	return nil, false
}

// DeclareVariable declares a constant. Declaring the same name with the
// same sort again returns the existing term.
func (s *Session) DeclareVariable(name string, sort smt.Sort) (smt.Expression, error) {
	if err := smt.CheckSymbol(name); err != nil {
		return nil, err
	}
	if sort.Kind() == smt.KindFunction {
		return nil, errors.Errorf("variable %s cannot have function sort %v", name, sort)
	}
	if t, ok := s.terms[name]; ok && smt.Equal(t.Sort(), sort) {
		return t, nil
	}
	if prev, ok := s.lookup(name); ok {
		return nil, &smt.RedeclarationError{Name: name, Previous: prev, Sort: sort}
	}
	t := &term{text: smt.QuoteSymbol(name), sort: sort}
	s.terms[name] = t
	s.decls = append(s.decls, Declaration{Name: name, Sort: sort})
	return t, nil
}

// DeclareFunction declares an uninterpreted function.
func (s *Session) DeclareFunction(name string, sort *smt.FunctionSort) (smt.Function, error) {
	if err := smt.CheckSymbol(name); err != nil {
		return nil, err
	}
	if f, ok := s.funcs[name]; ok && smt.Equal(f.sort, sort) {
		return f, nil
	}
	if prev, ok := s.lookup(name); ok {
		return nil, &smt.RedeclarationError{Name: name, Previous: prev, Sort: sort}
	}
	f := &function{name: name, sort: sort}
	s.funcs[name] = f
	s.decls = append(s.decls, Declaration{Name: name, Sort: sort})
	return f, nil
}

// Declarations returns the declarations in the order they were made.
func (s *Session) Declarations() []Declaration {
	decls := make([]Declaration, len(s.decls))
	copy(decls, s.decls)
	return decls
}

// Lookup returns the declaration of name.
func (s *Session) Lookup(name string) (Declaration, bool) {
	sort, ok := s.lookup(name)
	if !ok {
		return Declaration{}, false
	}
	return Declaration{Name: name, Sort: sort}, true
}

// Len returns the number of declarations.
func (s *Session) Len() int {
	return len(s.decls)
}

// WriteTo writes one declare-fun command per declaration.
func (s *Session) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, d := range s.decls {
		m, err := fmt.Fprintln(bw, declareFun(d))
		n += int64(m)
		if err != nil {
			return n, errors.Wrap(err, "failed to write declarations")
		}
	}
	if err := bw.Flush(); err != nil {
		return n, errors.Wrap(err, "failed to write declarations")
	}
	return n, nil
}

func declareFun(d Declaration) string {
	name := smt.QuoteSymbol(d.Name)
	if fs, ok := d.Sort.(*smt.FunctionSort); ok {
		return fmt.Sprintf("(declare-fun %s %s)", name, fs)
	}
	return fmt.Sprintf("(declare-fun %s () %s)", name, d.Sort)
}
