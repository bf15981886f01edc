package assignment

import (
	"github.com/pkg/errors"
)

type lineKind int

const (
	lineRow lineKind = iota
	lineColumn
)

func (k lineKind) String() string {
	if k == lineRow {
		return "row"
	}
	return "column"
}

type coverLine struct {
	kind  lineKind
	index int
}

type lineCount struct {
	index int
	zeros int
}

// zeroCounts keeps zero numbers of not covered lines in index order
type zeroCounts []lineCount

func (z zeroCounts) remove(index int) zeroCounts {
	for i, lc := range z {
		if lc.index == index {
			return append(z[:i], z[i+1:]...)
		}
	}
	return z
}

func (z zeroCounts) decrement() {
	for i := range z {
		if z[i].zeros > 0 {
			z[i].zeros--
		}
	}
}

// largest returns the first line with the strictly largest zero count
func (z zeroCounts) largest() int {
	res := z[0]
	for _, lc := range z[1:] {
		if lc.zeros > res.zeros {
			res = lc
		}
	}
	return res.index
}

// coverState is owned by one selectCoverLines call
type coverState struct {
	size    int
	rows    zeroCounts
	columns zeroCounts
	visited [][]int
	lines   []coverLine
}

func newCoverState(m Matrix) (*coverState, error) {
	n := len(m)
	if n == 0 {
		return nil, errors.Wrap(ErrComputation, "Can't count zeros for empty matrix")
	}
	res := &coverState{size: n, rows: make(zeroCounts, n), columns: make(zeroCounts, n)}
	for i := 0; i < n; i++ {
		res.rows[i].index = i
		res.columns[i].index = i
	}
	for i, r := range m {
		if len(r) != n {
			return nil, errors.Wrapf(ErrComputation, "Matrix is not square, row %d has %d columns", i, len(r))
		}
		for j, v := range r {
			if v == 0 {
				res.rows[i].zeros++
				res.columns[j].zeros++
			}
		}
	}
	return res, nil
}

func (s *coverState) next() (coverLine, bool) {
	switch {
	case len(s.rows) > 0 && len(s.columns) > 0:
		// every row is compared with every column, but only the last
		// comparison is kept: the last uncovered row and column decide
		r, c := s.rows[len(s.rows)-1], s.columns[len(s.columns)-1]
		if r.zeros > c.zeros {
			return coverLine{kind: lineRow, index: r.index}, true
		}
		return coverLine{kind: lineColumn, index: c.index}, true
	case len(s.columns) > 0:
		return coverLine{kind: lineColumn, index: s.columns.largest()}, true
	case len(s.rows) > 0:
		return coverLine{kind: lineRow, index: s.rows.largest()}, true
	}
	return coverLine{}, false
}

func (s *coverState) cover(l coverLine) {
	if s.visited == nil {
		s.visited = make([][]int, s.size)
		for i := range s.visited {
			s.visited[i] = make([]int, s.size)
		}
	}
	if l.kind == lineRow {
		for j := 0; j < s.size; j++ {
			s.visited[l.index][j]++
		}
		s.rows = s.rows.remove(l.index)
		s.columns.decrement()
	} else {
		for i := 0; i < s.size; i++ {
			s.visited[i][l.index]++
		}
		s.columns = s.columns.remove(l.index)
		s.rows.decrement()
	}
	s.lines = append(s.lines, l)
}

// selectCoverLines runs the line removal loop size+1 times.
// Matrix values are left untouched, only the cover state evolves.
func selectCoverLines(m Matrix) (*coverState, error) {
	s, err := newCoverState(m)
	if err != nil {
		return nil, err
	}
	for i := 0; i <= s.size; i++ {
		l, ok := s.next()
		if !ok {
			break
		}
		s.cover(l)
	}
	return s, nil
}
