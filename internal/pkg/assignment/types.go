package assignment

import "sort"

//Worker is a developer that can take a task
type Worker struct {
	ID          string
	SkillFactor float64
}

//Task is a unit of work with a precomputed cost
type Task struct {
	ID   string
	Cost float64
}

//Pair is a worker and task match by input positions
type Pair struct {
	Worker int
	Task   int
}

//Result keeps the worker index -> task index mapping of one solve
type Result struct {
	Assigned map[int]int
	Workers  []Worker
	Tasks    []Task
}

func newResult(workers []Worker, tasks []Task) *Result {
	return &Result{Assigned: make(map[int]int), Workers: workers, Tasks: tasks}
}

//Empty returns true if nothing was assigned
func (r *Result) Empty() bool {
	return r == nil || len(r.Assigned) == 0
}

//Pairs returns assigned pairs sorted by worker index
func (r *Result) Pairs() []Pair {
	if r.Empty() {
		return []Pair{}
	}
	res := make([]Pair, 0, len(r.Assigned))
	for w, t := range r.Assigned {
		res = append(res, Pair{Worker: w, Task: t})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Worker < res[j].Worker })
	return res
}

//Unassigned returns indexes of workers left without a task
func (r *Result) Unassigned() []int {
	res := make([]int, 0)
	if r == nil {
		return res
	}
	for i := range r.Workers {
		if _, ok := r.Assigned[i]; !ok {
			res = append(res, i)
		}
	}
	return res
}
