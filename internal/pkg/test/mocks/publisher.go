package mocks

import "github.com/stretchr/testify/mock"

//Publisher is a mock
type Publisher struct {
	mock.Mock
}

//Publish is a mocked Publish function
func (m *Publisher) Publish(topic string, msg interface{}) error {
	args := m.Mock.Called(topic, msg)
	return args.Error(0)
}
