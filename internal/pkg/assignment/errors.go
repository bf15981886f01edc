package assignment

import "github.com/pkg/errors"

var (
	//ErrNoWorkers indicates empty worker list
	ErrNoWorkers = errors.New("No workers")
	//ErrNoTasks indicates empty task list
	ErrNoTasks = errors.New("No tasks")
	//ErrInvalidOperand indicates a value the cost can not be calculated from, e.g. zero skill factor
	ErrInvalidOperand = errors.New("Invalid operand")
	//ErrDegenerateInput indicates a matrix without rows or columns
	ErrDegenerateInput = errors.New("Degenerate input")
	//ErrComputation indicates malformed intermediate data
	ErrComputation = errors.New("Computation failed")
	//ErrNoAssignmentFound indicates that no zero cell could be matched
	ErrNoAssignmentFound = errors.New("No assignment found")
)

//IsSoft returns true if err means 'nothing to assign' rather than a failure
func IsSoft(err error) bool {
	return errors.Is(err, ErrNoWorkers) || errors.Is(err, ErrNoTasks) ||
		errors.Is(err, ErrDegenerateInput) || errors.Is(err, ErrNoAssignmentFound)
}
