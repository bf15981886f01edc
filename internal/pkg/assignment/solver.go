package assignment

import (
	"strings"

	"bitbucket.org/airenas/devtasks/internal/pkg/cmdapp"
	"github.com/pkg/errors"
)

//Strategy selects how workers are matched to tasks after the matrix reduction
type Strategy string

const (
	//StrategyGreedy matches zero cells with the three pass heuristic, the result may be incomplete
	StrategyGreedy Strategy = "greedy"
	//StrategyOptimal finds the minimum cost assignment
	StrategyOptimal Strategy = "optimal"
)

//ParseStrategy converts config value to Strategy, empty value means greedy
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyGreedy:
		return StrategyGreedy, nil
	case StrategyOptimal:
		return StrategyOptimal, nil
	}
	return "", errors.Errorf("Unknown assignment strategy '%s'", s)
}

//Solver runs the assignment pipeline
type Solver struct {
	strategy Strategy
}

//NewSolver creates solver for the strategy
func NewSolver(strategy Strategy) (*Solver, error) {
	if strategy != StrategyGreedy && strategy != StrategyOptimal {
		return nil, errors.Errorf("Wrong strategy '%s'", strategy)
	}
	return &Solver{strategy: strategy}, nil
}

//Strategy returns solver's strategy
func (s *Solver) Strategy() Strategy {
	return s.strategy
}

var greedySolver = &Solver{strategy: StrategyGreedy}

//Solve assigns tasks to workers with the greedy strategy
func Solve(workers []Worker, tasks []Task) (*Result, error) {
	return greedySolver.Solve(workers, tasks)
}

//Solve assigns tasks to workers.
//Returns an empty result if there is nothing to assign and an error on unexpected failure.
func (s *Solver) Solve(workers []Worker, tasks []Task) (*Result, error) {
	cmdapp.Log.Debugf("Solving %d workers x %d tasks (%s)", len(workers), len(tasks), s.strategy)
	res := newResult(workers, tasks)
	assigned, err := s.run(workers, tasks)
	if err != nil {
		if IsSoft(err) {
			cmdapp.Log.Warnf("Nothing assigned: %v", err)
			return res, nil
		}
		cmdapp.Log.Error(err)
		return nil, err
	}
	res.Assigned = assigned
	cmdapp.Log.Debugf("Assigned %d pairs", len(assigned))
	return res, nil
}

func (s *Solver) run(workers []Worker, tasks []Task) (map[int]int, error) {
	m, err := buildMatrix(workers, tasks)
	if err != nil {
		return nil, stageErr("create matrix", err)
	}
	m, sh, err := balance(m)
	if err != nil {
		return nil, stageErr("balance matrix", err)
	}
	m, err = reduceRows(m)
	if err != nil {
		return nil, stageErr("reduce rows", err)
	}
	m, err = reduceColumns(m)
	if err != nil {
		return nil, stageErr("reduce columns", err)
	}
	if s.strategy == StrategyOptimal {
		res, err := solveOptimal(m, sh)
		if err != nil {
			return nil, stageErr("find optimal", err)
		}
		return res, nil
	}
	cs, err := selectCoverLines(m)
	if err != nil {
		return nil, stageErr("cover zeros", err)
	}
	cmdapp.Log.Debugf("Covered %d lines", len(cs.lines))
	m, err = trim(m, sh)
	if err != nil {
		return nil, stageErr("remove virtual lines", err)
	}
	res, err := extract(m, sh)
	if err != nil {
		return nil, stageErr("extract assignment", err)
	}
	return res, nil
}

func stageErr(stage string, err error) error {
	return errors.Wrapf(err, "Stage '%s' failed", stage)
}
