// Package smt defines the sort algebra and the declaration interface
// shared by the solver backends.
package smt

import (
	"strings"
)

// Kind tags the variant of a Sort.
type Kind int

const (
	// KindBool is the kind of the boolean sort.
	KindBool Kind = iota
	// KindInt is the kind of the unbounded integer sort.
	KindInt
	// KindArray is the kind of array sorts.
	KindArray
	// KindFunction is the kind of function sorts.
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindArray:
		return "Array"
	case KindFunction:
		return "Function"
	}
	return "Kind(?)"
}

// Sort is a solver-level sort. The set of implementations is closed:
// Bool, Int, *ArraySort and *FunctionSort.
type Sort interface {
	// Kind returns the variant of the sort.
	Kind() Kind
	// String returns the SMT-LIB notation of the sort.
	String() string

	sort()
}

type boolSort struct{}

func (boolSort) Kind() Kind     { return KindBool }
func (boolSort) String() string { return "Bool" }
func (boolSort) sort()          {}

type intSort struct{}

func (intSort) Kind() Kind     { return KindInt }
func (intSort) String() string { return "Int" }
func (intSort) sort()          {}

var (
	// Bool is the boolean sort.
	Bool Sort = boolSort{}
	// Int is the sort of arbitrary-precision integers.
	Int Sort = intSort{}
)

// ArraySort is the sort of total maps from Domain to Range.
type ArraySort struct {
	domain Sort
	range_ Sort
}

// NewArraySort returns the array sort with the given domain and range.
func NewArraySort(domain, range_ Sort) *ArraySort {
	return &ArraySort{domain: domain, range_: range_}
}

// Kind returns KindArray.
func (s *ArraySort) Kind() Kind { return KindArray }

// Domain returns the index sort.
func (s *ArraySort) Domain() Sort { return s.domain }

// Range returns the element sort.
func (s *ArraySort) Range() Sort { return s.range_ }

func (s *ArraySort) String() string {
	return "(Array " + s.domain.String() + " " + s.range_.String() + ")"
}

func (s *ArraySort) sort() {}

// FunctionSort is the sort of an uninterpreted function.
type FunctionSort struct {
	params []Sort
	result Sort
}

// NewFunctionSort returns the function sort with the given parameter
// sorts and result sort. params is copied.
func NewFunctionSort(params []Sort, result Sort) *FunctionSort {
	ps := make([]Sort, len(params))
	copy(ps, params)
	return &FunctionSort{params: ps, result: result}
}

// Kind returns KindFunction.
func (s *FunctionSort) Kind() Kind { return KindFunction }

// Params returns a copy of the parameter sorts.
func (s *FunctionSort) Params() []Sort {
	ps := make([]Sort, len(s.params))
	copy(ps, s.params)
	return ps
}

// Arity returns the number of parameters.
func (s *FunctionSort) Arity() int { return len(s.params) }

// Param returns the i-th parameter sort.
func (s *FunctionSort) Param(i int) Sort { return s.params[i] }

// Result returns the result sort.
func (s *FunctionSort) Result() Sort { return s.result }

// String returns the signature in declare-fun order, e.g. "(Int Int) Bool".
func (s *FunctionSort) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range s.params {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.String())
	}
	b.WriteString(") ")
	b.WriteString(s.result.String())
	return b.String()
}

func (s *FunctionSort) sort() {}

// Equal reports whether two sorts are structurally identical.
func Equal(x, y Sort) bool {
	if x == nil || y == nil {
		return x == y
	}
	if x.Kind() != y.Kind() {
		return false
	}
	switch x := x.(type) {
	case *ArraySort:
		y := y.(*ArraySort)
		return Equal(x.domain, y.domain) && Equal(x.range_, y.range_)
	case *FunctionSort:
		y := y.(*FunctionSort)
		if len(x.params) != len(y.params) {
			return false
		}
		for i := range x.params {
			if !Equal(x.params[i], y.params[i]) {
				return false
			}
		}
		return Equal(x.result, y.result)
	}
	return true
}
