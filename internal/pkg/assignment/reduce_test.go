package assignment

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestReduceRows(t *testing.T) {
	m, err := reduceRows(Matrix{{2, 4}, {1, 2}})
	assert.Nil(t, err)
	assert.Equal(t, Matrix{{0, 2}, {0, 1}}, m)
}

func TestReduceRows_MinIsZero(t *testing.T) {
	m, err := reduceRows(Matrix{{5, 3, 9}, {7, 7, 7}, {-1, 4, 2}})
	assert.Nil(t, err)
	for _, r := range m {
		assert.Equal(t, 0.0, minOf(r))
	}
}

func TestReduceRows_Fails(t *testing.T) {
	_, err := reduceRows(Matrix{})
	assert.True(t, errors.Is(err, ErrComputation))
	_, err = reduceRows(Matrix{{1}, {}})
	assert.True(t, errors.Is(err, ErrComputation))
}

func TestReduceColumns(t *testing.T) {
	m, err := reduceColumns(Matrix{{0, 2}, {0, 1}})
	assert.Nil(t, err)
	assert.Equal(t, Matrix{{0, 1}, {0, 0}}, m)
}

func TestReduceColumns_MinIsZero(t *testing.T) {
	m, _ := reduceRows(Matrix{{5, 3, 9}, {7, 8, 1}, {4, 4, 6}})
	m, err := reduceColumns(m)
	assert.Nil(t, err)
	for j := range m[0] {
		c := make([]float64, len(m))
		for i := range m {
			c[i] = m[i][j]
		}
		assert.Equal(t, 0.0, minOf(c))
	}
}

func TestReduceColumns_Fails(t *testing.T) {
	_, err := reduceColumns(Matrix{})
	assert.True(t, errors.Is(err, ErrComputation))
	_, err = reduceColumns(Matrix{{1, 2}, {1}})
	assert.True(t, errors.Is(err, ErrComputation))
}

func minOf(v []float64) float64 {
	res := v[0]
	for _, a := range v {
		if a < res {
			res = a
		}
	}
	return res
}
