package mocks

import (
	"bitbucket.org/airenas/devtasks/internal/pkg/persistence"
	"github.com/stretchr/testify/mock"
)

//TaskSaver is a mock
type TaskSaver struct {
	mock.Mock
}

//SaveAll is a mocked SaveAll function
func (m *TaskSaver) SaveAll(provider string, tasks []*persistence.Task) (int, error) {
	args := m.Mock.Called(provider, tasks)
	return args.Int(0), args.Error(1)
}

//DeveloperSaver is a mock
type DeveloperSaver struct {
	mock.Mock
}

//SaveAll is a mocked SaveAll function
func (m *DeveloperSaver) SaveAll(developers []*persistence.Developer) (int, error) {
	args := m.Mock.Called(developers)
	return args.Int(0), args.Error(1)
}
