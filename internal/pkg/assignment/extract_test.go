package assignment

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestZeroAdjacency(t *testing.T) {
	a, err := newZeroAdjacency(Matrix{{0, 1}, {0, 0}}, &shape{height: 2, width: 2, size: 2})
	assert.Nil(t, err)
	assert.Equal(t, map[int][]int{0: {0}, 1: {0, 1}}, a.workerTasks)
	assert.Equal(t, map[int][]int{0: {0, 1}, 1: {1}}, a.taskWorkers)
}

func TestZeroAdjacency_Fails(t *testing.T) {
	_, err := newZeroAdjacency(Matrix{{0, 1}}, &shape{height: 2, width: 2, size: 2})
	assert.True(t, errors.Is(err, ErrComputation))
	_, err = newZeroAdjacency(Matrix{{0, 1}, {0}}, &shape{height: 2, width: 2, size: 2})
	assert.True(t, errors.Is(err, ErrComputation))
}

func TestExtract(t *testing.T) {
	r, err := extract(Matrix{{0, 1}, {0, 0}}, &shape{height: 2, width: 2, size: 2})
	assert.Nil(t, err)
	assert.Equal(t, map[int]int{0: 0, 1: 1}, r)
}

func TestExtract_Ambiguous(t *testing.T) {
	r, err := extract(Matrix{{0, 0}, {0, 0}}, &shape{height: 2, width: 2, size: 2})
	assert.Nil(t, err)
	assert.Equal(t, map[int]int{0: 0, 1: 1}, r)
}

func TestExtract_SharedUniqueWorker(t *testing.T) {
	r, err := extract(Matrix{{0, 0}, {1, 1}}, &shape{height: 2, width: 2, size: 2})
	assert.Nil(t, err)
	assert.Equal(t, map[int]int{0: 0}, r)
}

func TestExtract_SharedUniqueTask(t *testing.T) {
	r, err := extract(Matrix{{0, 1, 1}, {0, 1, 1}, {0, 0, 0}}, &shape{height: 3, width: 3, size: 3})
	assert.Nil(t, err)
	assert.Equal(t, map[int]int{0: 0, 2: 1}, r)
}

func TestExtract_NoZeros(t *testing.T) {
	_, err := extract(Matrix{{1, 2}, {3, 4}}, &shape{height: 2, width: 2, size: 2})
	assert.Equal(t, ErrNoAssignmentFound, err)
}

func TestExtract_Injective(t *testing.T) {
	ms := []Matrix{{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
		{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}},
		{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}},
		{{0, 0}, {0, 0}, {0, 1}}}
	for _, m := range ms {
		r, err := extract(m, &shape{height: len(m), width: len(m[0]), size: len(m)})
		assert.Nil(t, err)
		assertInjective(t, r)
		for w, tk := range r {
			assert.Equal(t, 0.0, m[w][tk])
		}
	}
}

func assertInjective(t *testing.T, r map[int]int) {
	t.Helper()
	seen := map[int]bool{}
	for _, tk := range r {
		assert.False(t, seen[tk], "task %d assigned twice", tk)
		seen[tk] = true
	}
}
