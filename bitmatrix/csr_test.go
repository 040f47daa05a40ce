package bitmatrix

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCSR_OutOfRange(t *testing.T) {
	_, err := NewCSR(2, 2, []Cell{{Row: 2, Col: 0}})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestNewCSR_DedupAndNNZ(t *testing.T) {
	m, err := NewCSR(2, 2, []Cell{{0, 0}, {0, 0}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.NNZ())
	assert.True(t, m.At(0, 0))
	assert.True(t, m.At(1, 1))
	assert.False(t, m.At(0, 1))
}

func TestAdd_ShapeMismatch(t *testing.T) {
	a := Zero(2, 2)
	b := Zero(3, 3)
	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestAdd_Union(t *testing.T) {
	a, _ := NewCSR(2, 2, []Cell{{0, 0}})
	b, _ := NewCSR(2, 2, []Cell{{0, 0}, {1, 1}})
	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.NNZ())
}

func TestMul_ShapeMismatch(t *testing.T) {
	a := Zero(2, 3)
	b := Zero(2, 2)
	_, err := a.Mul(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestMul_PathComposition(t *testing.T) {
	// 0 -> 1 -> 2
	a, _ := NewCSR(3, 3, []Cell{{0, 1}})
	b, _ := NewCSR(3, 3, []Cell{{1, 2}})
	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.True(t, prod.At(0, 2))
	assert.Equal(t, 1, prod.NNZ())
}

func TestKron_CellForCell(t *testing.T) {
	a, _ := NewCSR(2, 2, []Cell{{0, 1}})
	b, _ := NewCSR(2, 2, []Cell{{1, 0}})
	k := Kron(a, b)
	assert.Equal(t, 4, k.Rows())
	assert.Equal(t, 4, k.Cols())
	// (i*rB+p, j*cB+q) for i=0,j=1,p=1,q=0 -> (1, 2)
	assert.True(t, k.At(1, 2))
	assert.Equal(t, 1, k.NNZ())
}

func TestBlockDiag(t *testing.T) {
	a, _ := NewCSR(2, 2, []Cell{{0, 1}})
	b, _ := NewCSR(3, 3, []Cell{{1, 2}})
	bd := BlockDiag(a, b)
	assert.Equal(t, 5, bd.Rows())
	assert.Equal(t, 5, bd.Cols())
	assert.True(t, bd.At(0, 1))
	assert.True(t, bd.At(1+2, 2+2))
	assert.Equal(t, 2, bd.NNZ())
}

func TestHConcat(t *testing.T) {
	a, _ := NewCSR(2, 2, []Cell{{0, 1}})
	b, _ := NewCSR(2, 3, []Cell{{1, 2}})
	h, err := HConcat(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, h.Rows())
	assert.Equal(t, 5, h.Cols())
	assert.True(t, h.At(0, 1))
	assert.True(t, h.At(1, 2+2))
}

func TestClosure_StarShape(t *testing.T) {
	// 0->1->2, closure should add 0->2 (not reflexive).
	m, _ := NewCSR(3, 3, []Cell{{0, 1}, {1, 2}})
	c, err := Closure(context.Background(), m)
	require.NoError(t, err)
	assert.True(t, c.At(0, 1))
	assert.True(t, c.At(1, 2))
	assert.True(t, c.At(0, 2))
	assert.False(t, c.At(0, 0))
}

func TestClosure_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m, _ := NewCSR(2, 2, []Cell{{0, 1}})
	_, err := Closure(ctx, m)
	assert.Error(t, err)
}

func TestIdentity(t *testing.T) {
	id := Identity(3)
	assert.Equal(t, 3, id.NNZ())
	for i := 0; i < 3; i++ {
		assert.True(t, id.At(i, i))
	}
}

func TestSumAll_EmptyIsError(t *testing.T) {
	_, err := SumAll(nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestNonzero_Deterministic(t *testing.T) {
	m, _ := NewCSR(2, 2, []Cell{{1, 0}, {0, 1}})
	cells := m.Nonzero()
	assert.Equal(t, []Cell{{0, 1}, {1, 0}}, cells)
}
