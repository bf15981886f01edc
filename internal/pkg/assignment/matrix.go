package assignment

import (
	"math"

	"github.com/pkg/errors"
)

//Matrix is a worker x task cost table, rows are workers
type Matrix [][]float64

// shape keeps the dimensions before balancing
type shape struct {
	height int
	width  int
	size   int
}

func buildMatrix(workers []Worker, tasks []Task) (Matrix, error) {
	if len(workers) == 0 {
		return nil, ErrNoWorkers
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	res := make(Matrix, len(workers))
	for i, w := range workers {
		if w.SkillFactor == 0 {
			return nil, errors.Wrapf(ErrInvalidOperand, "Zero skill factor for worker '%s'", w.ID)
		}
		res[i] = make([]float64, len(tasks))
		for j, t := range tasks {
			v := t.Cost / w.SkillFactor
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.Wrapf(ErrInvalidOperand, "Wrong cost for worker '%s', task '%s'", w.ID, t.ID)
			}
			res[i][j] = v
		}
	}
	return res, nil
}

// balance pads the matrix with zero rows or zero columns until it is square
func balance(m Matrix) (Matrix, *shape, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil, nil, ErrDegenerateInput
	}
	s := &shape{height: len(m), width: len(m[0])}
	for i, r := range m {
		if len(r) != s.width {
			return nil, nil, errors.Wrapf(ErrComputation, "Row %d has %d columns, expected %d", i, len(r), s.width)
		}
	}
	if s.height < s.width {
		for i := s.height; i < s.width; i++ {
			m = append(m, make([]float64, s.width))
		}
	} else if s.width < s.height {
		for i := range m {
			m[i] = append(m[i], make([]float64, s.height-s.width)...)
		}
	}
	s.size = len(m)
	return m, s, nil
}

// trim removes the rows or columns added by balance
func trim(m Matrix, s *shape) (Matrix, error) {
	if s == nil || len(m) != s.size {
		return nil, errors.Wrap(ErrComputation, "Matrix size changed after balancing")
	}
	if s.height < s.width {
		m = m[:s.height]
	} else if s.width < s.height {
		for i := range m {
			m[i] = m[i][:s.width]
		}
	}
	return m, nil
}
