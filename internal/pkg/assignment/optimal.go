package assignment

import (
	"math"

	"github.com/pkg/errors"
)

// solveOptimal finds the minimum cost assignment of the balanced square matrix
// using row/column potentials and augmenting paths (Kuhn-Munkres).
// Padded rows and columns are dropped from the result.
func solveOptimal(m Matrix, s *shape) (map[int]int, error) {
	n := s.size
	if n == 0 || len(m) != n {
		return nil, errors.Wrap(ErrComputation, "Matrix is not balanced")
	}
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1) // p[j] - row matched to column j, 1 based
	way := make([]int, n+1)
	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}
		used := make([]bool, n+1)
		for {
			used[j0] = true
			i0, delta, j1 := p[j0], math.Inf(1), 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := m[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			if j1 == 0 {
				return nil, errors.Wrapf(ErrComputation, "Can't augment row %d", i-1)
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}
	res := make(map[int]int)
	for j := 1; j <= n; j++ {
		w, t := p[j]-1, j-1
		if w < s.height && t < s.width {
			res[w] = t
		}
	}
	if len(res) == 0 {
		return nil, ErrNoAssignmentFound
	}
	return res, nil
}
