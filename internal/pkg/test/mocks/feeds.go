package mocks

import (
	"bitbucket.org/airenas/devtasks/internal/pkg/feed"
	"bitbucket.org/airenas/devtasks/internal/pkg/persistence"
	"github.com/stretchr/testify/mock"
)

//FeedList is a mock
type FeedList struct {
	mock.Mock
}

//All is a mocked All function
func (m *FeedList) All() []*feed.Feed {
	args := m.Mock.Called()
	res, _ := args.Get(0).([]*feed.Feed)
	return res
}

//Fetcher is a mock
type Fetcher struct {
	mock.Mock
}

//Fetch is a mocked Fetch function
func (m *Fetcher) Fetch(f *feed.Feed) ([]*persistence.Task, error) {
	args := m.Mock.Called(f)
	return mTasks(args.Get(0)), args.Error(1)
}
