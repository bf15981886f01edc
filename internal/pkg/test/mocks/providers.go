package mocks

import (
	"bitbucket.org/airenas/devtasks/internal/pkg/persistence"
	"github.com/stretchr/testify/mock"
)

//DeveloperProvider is a mock
type DeveloperProvider struct {
	mock.Mock
}

//Developers is a mocked Developers function
func (m *DeveloperProvider) Developers() ([]*persistence.Developer, error) {
	args := m.Mock.Called()
	return mDevelopers(args.Get(0)), args.Error(1)
}

//TaskProvider is a mock
type TaskProvider struct {
	mock.Mock
}

//Tasks is a mocked Tasks function
func (m *TaskProvider) Tasks() ([]*persistence.Task, error) {
	args := m.Mock.Called()
	return mTasks(args.Get(0)), args.Error(1)
}

//NameProvider is a mock
type NameProvider struct {
	mock.Mock
}

//Names is a mocked Names function
func (m *NameProvider) Names() (map[string]string, error) {
	args := m.Mock.Called()
	res, _ := args.Get(0).(map[string]string)
	return res, args.Error(1)
}

func mDevelopers(v interface{}) []*persistence.Developer {
	res, _ := v.([]*persistence.Developer)
	return res
}

func mTasks(v interface{}) []*persistence.Task {
	res, _ := v.([]*persistence.Task)
	return res
}
