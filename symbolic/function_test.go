package symbolic

import (
	"go/types"
	"testing"

	"github.com/ajalab/smtvar/smt"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclareFunctionOnce(t *testing.T) {
	s := &fakeSolver{}
	f, err := DeclareFunction(sig([]types.Type{tInt, tBool}, tInt), "f", s)
	require.NoError(t, err)
	assert.Equal(t, "f", f.Name())
	assert.Equal(t, 2, f.Arity())
	require.Equal(t, []string{"f"}, s.names())

	x, err := NewInt(tInt, "x", s)
	require.NoError(t, err)
	b, err := NewBool(tBool, "b", s)
	require.NoError(t, err)
	xv, err := x.CurrentValue()
	require.NoError(t, err)
	bv, err := b.CurrentValue()
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		app, err := f.Apply(xv, bv)
		require.NoError(t, err)
		assert.Equal(t, "(f x_0 b_0)", app.String())
		assert.Equal(t, smt.Int, app.Sort())
	}
	// Applications do not declare anything new.
	assert.Equal(t, []string{"f", "x_0", "b_0"}, s.names())
}

func TestApplyArityMismatch(t *testing.T) {
	s := &fakeSolver{}
	f, err := Declare([]types.Type{tInt, tInt}, tBool, "lt", s)
	require.NoError(t, err)

	arg := &fakeExpr{text: "a", sort: smt.Int}
	_, err = f.Apply(arg, arg, arg)
	var ame *ArityMismatchError
	require.True(t, errors.As(err, &ame), "%v", err)
	assert.Equal(t, 2, ame.Want)
	assert.Equal(t, 3, ame.Got)
	assert.Equal(t, "lt", ame.Name)

	_, err = f.Apply()
	assert.True(t, errors.As(err, &ame))
}

func TestDeclareSort(t *testing.T) {
	s := &fakeSolver{}
	sort := smt.NewFunctionSort([]smt.Sort{smt.NewArraySort(smt.Int, smt.Int)}, smt.Bool)
	f, err := DeclareSort(sort, "p", s)
	require.NoError(t, err)
	assert.Same(t, sort, f.Sort())
	require.Len(t, s.decls, 1)
	assert.True(t, smt.Equal(sort, s.decls[0].sort))
}

func TestDeclareFunctionMismatch(t *testing.T) {
	_, err := DeclareFunction(tInt, "f", &fakeSolver{})
	var tcm *TypeCategoryMismatchError
	require.True(t, errors.As(err, &tcm), "%v", err)
	assert.Equal(t, Function, tcm.Want)
	assert.Equal(t, Number, tcm.Got)
}

func TestDeclareUnsupported(t *testing.T) {
	s := &fakeSolver{}
	_, err := Declare([]types.Type{tString}, tInt, "g", s)
	var ute *UnsupportedTypeError
	require.True(t, errors.As(err, &ute), "%v", err)
	assert.Empty(t, s.decls)

	_, err = DeclareFunction(sig([]types.Type{tInt}), "h", s)
	require.True(t, errors.As(err, &ute), "%v", err)
}
