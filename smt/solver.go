package smt

import (
	"fmt"
	"strings"
)

// Expression is a solver-native term.
type Expression interface {
	// Sort returns the sort of the term.
	Sort() Sort
	// String returns the SMT-LIB rendering of the term. For declared
	// constants this is the (quoted) symbol name.
	String() string
}

// Function is a declared uninterpreted function.
type Function interface {
	// Name returns the declared name.
	Name() string
	// Sort returns the declared signature.
	Sort() *FunctionSort
	// Apply returns the application of the function to args.
	Apply(args ...Expression) (Expression, error)
}

// Solver is the binding facade the symbolic layer declares symbols through.
// Implementations must be injective on names within a session: declaring
// the same name twice with an equal sort yields the same symbol, and
// declaring it with a different sort fails with *RedeclarationError.
type Solver interface {
	DeclareVariable(name string, sort Sort) (Expression, error)
	DeclareFunction(name string, sort *FunctionSort) (Function, error)
}

// RedeclarationError is returned when a name is declared again with a
// conflicting sort.
type RedeclarationError struct {
	Name     string
	Previous Sort
	Sort     Sort
}

func (e *RedeclarationError) Error() string {
	return fmt.Sprintf("symbol %s redeclared with sort %v, previously declared with sort %v", e.Name, e.Sort, e.Previous)
}

// InvalidSymbolError is returned when a name cannot be written as an
// SMT-LIB symbol.
type InvalidSymbolError struct {
	Name string
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("symbol %q contains '|' or '\\'", e.Name)
}

// CheckSymbol reports whether name can be declared. A quoted symbol
// cannot contain '|' or '\'.
func CheckSymbol(name string) error {
	if strings.ContainsAny(name, `|\`) {
		return &InvalidSymbolError{Name: name}
	}
	return nil
}

// QuoteSymbol returns name as an SMT-LIB symbol, wrapping it in |...|
// unless it is a simple symbol. name must pass CheckSymbol.
func QuoteSymbol(name string) string {
	if isSimpleSymbol(name) {
		return name
	}
	return "|" + name + "|"
}

func isSimpleSymbol(s string) bool {
	if s == "" {
		return false
	}
	if s[0] >= '0' && s[0] <= '9' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.IndexByte("~!@$%^&*_-+=<>.?/", c) >= 0:
		default:
			return false
		}
	}
	return true
}
