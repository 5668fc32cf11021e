package smtvar

import (
	"fmt"
	"go/token"
	"go/types"
	"strings"

	"github.com/ajalab/smtvar/log"
	"github.com/ajalab/smtvar/smt"
	"github.com/ajalab/smtvar/symbolic"
	"github.com/pkg/errors"
	"golang.org/x/tools/go/ssa"
)

// functionPrefix starts every function symbol. Variable base names are
// built from identifiers, '.' and '$' only, so the two never collide.
const functionPrefix = "@"

// Skipped is a source variable or callee that has no symbolic encoding.
type Skipped struct {
	Name string
	Type types.Type
	Err  error
}

func (s Skipped) String() string {
	return fmt.Sprintf("%s (%v): %v", s.Name, s.Type, s.Err)
}

// Assignment is a new version of a package-level variable created by a
// store.
type Assignment struct {
	Global *ssa.Global
	Value  smt.Expression
}

// Unit is the encoding of one function.
type Unit struct {
	Func *ssa.Function
	// Params are the symbolic parameters, in order, without the skipped ones.
	Params []*symbolic.Variable
	// Values maps SSA values to their symbolic expressions: parameters,
	// loads of package-level variables and applications of static callees.
	Values map[ssa.Value]smt.Expression
	// Assignments are the stores to package-level variables, in order.
	Assignments []Assignment
	Skipped     []Skipped
}

// Encoder owns one encoding session over a solver. Package-level variables
// and callee declarations are shared by all units of the session.
type Encoder struct {
	solver  smt.Solver
	sorts   symbolic.SortCache
	used    map[string]bool
	globals map[*ssa.Global]*symbolic.Variable
	funcs   map[*ssa.Function]*symbolic.FunctionDeclaration
	errs    map[ssa.Value]error
}

// NewEncoder returns an encoder declaring symbols through solver.
func NewEncoder(solver smt.Solver) *Encoder {
	return &Encoder{
		solver:  solver,
		used:    make(map[string]bool),
		globals: make(map[*ssa.Global]*symbolic.Variable),
		funcs:   make(map[*ssa.Function]*symbolic.FunctionDeclaration),
		errs:    make(map[ssa.Value]error),
	}
}

// baseName returns a name that is unique within the session.
func (e *Encoder) baseName(parts ...string) string {
	base := strings.Join(parts, ".")
	name := base
	for k := 1; e.used[name]; k++ {
		name = fmt.Sprintf("%s$%d", base, k)
	}
	e.used[name] = true
	return name
}

func isUnsupported(err error) bool {
	var ute *symbolic.UnsupportedTypeError
	return errors.As(err, &ute)
}

// Global returns the symbolic variable of g, creating it on first use.
// It returns nil and the cause if g has no encoding.
func (e *Encoder) Global(g *ssa.Global) (*symbolic.Variable, error) {
	if v, ok := e.globals[g]; ok {
		return v, nil
	}
	if err, ok := e.errs[g]; ok {
		return nil, err
	}
	ty := g.Type().(*types.Pointer).Elem()
	v, err := symbolic.New(ty, e.baseName(g.Pkg.Pkg.Name(), g.Name()), e.solver)
	if err != nil {
		e.errs[g] = err
		return nil, err
	}
	log.Debug.Printf("global %s: %v", v.BaseName(), v.Sort())
	e.globals[g] = v
	return v, nil
}

// Function returns the declaration of fn, declaring it on first use.
func (e *Encoder) Function(fn *ssa.Function) (*symbolic.FunctionDeclaration, error) {
	if f, ok := e.funcs[fn]; ok {
		return f, nil
	}
	if err, ok := e.errs[fn]; ok {
		return nil, err
	}
	f, err := e.declare(fn)
	if err != nil {
		e.errs[fn] = err
		return nil, err
	}
	log.Debug.Printf("function %s: %v", f.Name(), f.Sort())
	e.funcs[fn] = f
	return f, nil
}

func (e *Encoder) declare(fn *ssa.Function) (*symbolic.FunctionDeclaration, error) {
	sort, err := e.sorts.SortOf(fn.Signature)
	if err != nil {
		return nil, err
	}
	return symbolic.DeclareSort(sort.(*smt.FunctionSort), e.baseName(functionPrefix+fn.String()), e.solver)
}

// EncodeFunction encodes fn as one analysis unit. Variables whose types
// cannot be encoded are reported in Unit.Skipped; any other failure aborts
// the unit.
func (e *Encoder) EncodeFunction(fn *ssa.Function) (*Unit, error) {
	u := &Unit{
		Func:   fn,
		Values: make(map[ssa.Value]smt.Expression),
	}
	skipped := make(map[string]bool)
	skip := func(name string, ty types.Type, err error) {
		if skipped[name] {
			return
		}
		skipped[name] = true
		log.Debug.Printf("%s: skip %s: %v", fn, name, err)
		u.Skipped = append(u.Skipped, Skipped{Name: name, Type: ty, Err: err})
	}

	for _, p := range fn.Params {
		v, err := symbolic.New(p.Type(), e.baseName(fn.Name(), p.Name()), e.solver)
		if isUnsupported(err) {
			skip(p.Name(), p.Type(), err)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "%s: parameter %s", fn, p.Name())
		}
		x, err := v.CurrentValue()
		if err != nil {
			return nil, errors.Wrapf(err, "%s: parameter %s", fn, p.Name())
		}
		u.Params = append(u.Params, v)
		u.Values[p] = x
	}

	for _, b := range fn.Blocks {
		for _, instr := range b.Instrs {
			if err := e.encodeInstr(u, instr, skip); err != nil {
				return nil, errors.Wrapf(err, "%s: %v", fn, instr)
			}
		}
	}
	return u, nil
}

func (e *Encoder) encodeInstr(u *Unit, instr ssa.Instruction, skip func(string, types.Type, error)) error {
	switch instr := instr.(type) {
	case *ssa.UnOp:
		g, ok := instr.X.(*ssa.Global)
		if !ok || instr.Op != token.MUL {
			return nil
		}
		v, err := e.Global(g)
		if isUnsupported(err) {
			skip(g.String(), instr.Type(), err)
			return nil
		}
		if err != nil {
			return err
		}
		x, err := v.CurrentValue()
		if err != nil {
			return err
		}
		u.Values[instr] = x

	case *ssa.Store:
		g, ok := instr.Addr.(*ssa.Global)
		if !ok {
			return nil
		}
		v, err := e.Global(g)
		if isUnsupported(err) {
			skip(g.String(), instr.Val.Type(), err)
			return nil
		}
		if err != nil {
			return err
		}
		x, err := v.ValueAtIndex(v.Index() + 1)
		if err != nil {
			return err
		}
		v.Advance()
		u.Assignments = append(u.Assignments, Assignment{Global: g, Value: x})

	case *ssa.Call:
		callee := instr.Call.StaticCallee()
		if callee == nil {
			return nil
		}
		f, err := e.Function(callee)
		if isUnsupported(err) {
			skip(callee.String(), callee.Signature, err)
			return nil
		}
		if err != nil {
			return err
		}
		args := make([]smt.Expression, len(instr.Call.Args))
		for i, a := range instr.Call.Args {
			x, ok := u.Values[a]
			if !ok {
				// Operands computed by instructions outside this layer.
				log.Debug.Printf("%s: drop %v: operand %d (%v) has no encoding", u.Func, instr, i, a.Name())
				return nil
			}
			args[i] = x
		}
		x, err := f.Apply(args...)
		if err != nil {
			return err
		}
		u.Values[instr] = x
	}
	return nil
}
