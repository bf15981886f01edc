package assign

import (
	"time"

	"bitbucket.org/airenas/devtasks/internal/app/assign/api"
	"bitbucket.org/airenas/devtasks/internal/pkg/assignment"
	"bitbucket.org/airenas/devtasks/internal/pkg/cmdapp"
	"bitbucket.org/airenas/devtasks/internal/pkg/persistence"
	"github.com/pkg/errors"
)

//DeveloperProvider returns developers in a stable order
type DeveloperProvider interface {
	Developers() ([]*persistence.Developer, error)
}

//TaskProvider returns tasks in a stable order
type TaskProvider interface {
	Tasks() ([]*persistence.Task, error)
}

//NameProvider returns developer names by ID
type NameProvider interface {
	Names() (map[string]string, error)
}

//Solver matches workers to tasks
type Solver interface {
	Solve(workers []assignment.Worker, tasks []assignment.Task) (*assignment.Result, error)
}

func calcAssignments(data *ServiceData) (*api.Result, error) {
	devs, err := data.Developers.Developers()
	if err != nil {
		return nil, errors.Wrap(err, "Can't get developers")
	}
	tasks, err := data.Tasks.Tasks()
	if err != nil {
		return nil, errors.Wrap(err, "Can't get tasks")
	}
	cmdapp.Log.Infof("Assigning %d tasks to %d developers", len(tasks), len(devs))

	start := time.Now()
	ar, err := data.Solver.Solve(mapWorkers(devs), mapTasks(tasks))
	data.metrics.solveDur.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, errors.Wrap(err, "Can't assign tasks")
	}
	res := api.NewResult()
	names := map[string]string{}
	if !ar.Empty() {
		names, err = data.Names.Names()
		if err != nil {
			return nil, errors.Wrap(err, "Can't get developer names")
		}
	}
	for _, p := range ar.Pairs() {
		d, t := devs[p.Worker], tasks[p.Task]
		name, ok := names[d.ID]
		if !ok {
			cmdapp.Log.Warnf("No name for developer %s", d.ID)
		}
		res.Assignments = append(res.Assignments, api.Assignment{DeveloperID: d.ID, Developer: name,
			TaskID: t.ID, Task: t.Name, Provider: t.Provider, Cost: ar.Tasks[p.Task].Cost / ar.Workers[p.Worker].SkillFactor})
	}
	for _, i := range ar.Unassigned() {
		res.Unassigned = append(res.Unassigned, devs[i].ID)
	}
	data.metrics.assigned.Set(float64(len(res.Assignments)))
	return res, nil
}

func mapWorkers(devs []*persistence.Developer) []assignment.Worker {
	res := make([]assignment.Worker, len(devs))
	for i, d := range devs {
		res[i] = assignment.Worker{ID: d.ID, SkillFactor: d.Skill()}
	}
	return res
}

func mapTasks(tasks []*persistence.Task) []assignment.Task {
	res := make([]assignment.Task, len(tasks))
	for i, t := range tasks {
		res[i] = assignment.Task{ID: t.ID, Cost: t.Cost()}
	}
	return res
}
