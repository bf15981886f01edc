package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveOptimal(t *testing.T) {
	r, err := solveOptimal(Matrix{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}}, &shape{height: 3, width: 3, size: 3})
	assert.Nil(t, err)
	assert.Equal(t, map[int]int{0: 1, 1: 0, 2: 2}, r)
}

func TestSolveOptimal_DropsPadding(t *testing.T) {
	m, s, _ := balance(Matrix{{4, 8}, {2, 4}, {1, 2}})
	r, err := solveOptimal(m, s)
	assert.Nil(t, err)
	assert.Equal(t, map[int]int{1: 0, 2: 1}, r)
}

func TestSolveOptimal_Fails(t *testing.T) {
	_, err := solveOptimal(Matrix{{1}}, &shape{height: 2, width: 2, size: 2})
	assert.NotNil(t, err)
}
