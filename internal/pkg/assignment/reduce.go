package assignment

import "github.com/pkg/errors"

// reduceRows subtracts the smallest row value from every value of the row
func reduceRows(m Matrix) (Matrix, error) {
	if len(m) == 0 {
		return nil, errors.Wrap(ErrComputation, "Empty matrix")
	}
	for i, r := range m {
		if len(r) == 0 {
			return nil, errors.Wrapf(ErrComputation, "Empty row %d", i)
		}
		mv := r[0]
		for _, v := range r[1:] {
			if v < mv {
				mv = v
			}
		}
		for j := range r {
			r[j] -= mv
		}
	}
	return m, nil
}

func columnMinima(m Matrix) ([]float64, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil, errors.Wrap(ErrComputation, "Can't find column minima for empty matrix")
	}
	res := make([]float64, len(m[0]))
	copy(res, m[0])
	for i, r := range m[1:] {
		if len(r) != len(res) {
			return nil, errors.Wrapf(ErrComputation, "Row %d has %d columns, expected %d", i+1, len(r), len(res))
		}
		for j, v := range r {
			if v < res[j] {
				res[j] = v
			}
		}
	}
	return res, nil
}

// reduceColumns subtracts the smallest column value from every value of the column
func reduceColumns(m Matrix) (Matrix, error) {
	mins, err := columnMinima(m)
	if err != nil {
		return nil, err
	}
	for _, r := range m {
		for j := range r {
			r[j] -= mins[j]
		}
	}
	return m, nil
}
