package assignment

import (
	"github.com/pkg/errors"
)

type matchState int

const (
	unmatched matchState = iota
	tentative
	committed
)

// zeroAdjacency keeps zero cost counterparts in index order
type zeroAdjacency struct {
	workerTasks map[int][]int
	taskWorkers map[int][]int
}

func newZeroAdjacency(m Matrix, s *shape) (*zeroAdjacency, error) {
	if len(m) != s.height {
		return nil, errors.Wrapf(ErrComputation, "Expected %d rows, got %d", s.height, len(m))
	}
	res := &zeroAdjacency{workerTasks: make(map[int][]int), taskWorkers: make(map[int][]int)}
	for i, r := range m {
		if len(r) != s.width {
			return nil, errors.Wrapf(ErrComputation, "Expected %d columns in row %d, got %d", s.width, i, len(r))
		}
		for j, v := range r {
			if v == 0 {
				res.workerTasks[i] = append(res.workerTasks[i], j)
				res.taskWorkers[j] = append(res.taskWorkers[j], i)
			}
		}
	}
	return res, nil
}

type matcher struct {
	adj      *zeroAdjacency
	workers  []matchState
	tasks    []matchState
	assigned map[int]int
}

func newMatcher(adj *zeroAdjacency, s *shape) *matcher {
	return &matcher{adj: adj, workers: make([]matchState, s.height), tasks: make([]matchState, s.width),
		assigned: make(map[int]int)}
}

func (mt *matcher) commit(w, t int) {
	mt.workers[w] = committed
	mt.tasks[t] = committed
	mt.assigned[w] = t
	delete(mt.adj.workerTasks, w)
	delete(mt.adj.taskWorkers, t)
}

// tasks with a single zero worker
func (mt *matcher) matchUniqueWorkers() {
	for t := range mt.tasks {
		ws, ok := mt.adj.taskWorkers[t]
		if ok && len(ws) == 1 && mt.workers[ws[0]] != committed {
			mt.commit(ws[0], t)
		}
	}
}

// workers with a single free zero task
func (mt *matcher) matchUniqueTasks() {
	for w := range mt.workers {
		ts, ok := mt.adj.workerTasks[w]
		if !ok || mt.workers[w] == committed {
			continue
		}
		free := -1
		n := 0
		for _, t := range ts {
			if mt.tasks[t] != committed {
				free = t
				n++
			}
		}
		if n == 1 {
			mt.commit(w, free)
		}
	}
}

// first candidate worker that still lists the task
func (mt *matcher) matchFirstMutual() {
	for t := range mt.tasks {
		ws, ok := mt.adj.taskWorkers[t]
		if !ok || mt.tasks[t] == committed {
			continue
		}
		mt.tasks[t] = tentative
		for _, w := range ws {
			if mt.workers[w] != committed && contains(mt.adj.workerTasks[w], t) {
				mt.commit(w, t)
				break
			}
		}
		if mt.tasks[t] == tentative {
			mt.tasks[t] = unmatched
		}
	}
}

// extract matches workers and tasks over zero cells of the trimmed matrix
func extract(m Matrix, s *shape) (map[int]int, error) {
	adj, err := newZeroAdjacency(m, s)
	if err != nil {
		return nil, err
	}
	mt := newMatcher(adj, s)
	mt.matchUniqueWorkers()
	mt.matchUniqueTasks()
	mt.matchFirstMutual()
	if len(mt.assigned) == 0 {
		return nil, ErrNoAssignmentFound
	}
	return mt.assigned, nil
}

func contains(s []int, v int) bool {
	for _, a := range s {
		if a == v {
			return true
		}
	}
	return false
}
