package mocks

import "github.com/stretchr/testify/mock"

//WsConn is a mock
type WsConn struct {
	mock.Mock
}

//ReadMessage is a mocked ReadMessage function
func (m *WsConn) ReadMessage() (int, []byte, error) {
	args := m.Mock.Called()
	b, _ := args.Get(1).([]byte)
	return args.Int(0), b, args.Error(2)
}

//WriteJSON is a mocked WriteJSON function
func (m *WsConn) WriteJSON(v interface{}) error {
	args := m.Mock.Called(v)
	return args.Error(0)
}

//Close is a mocked Close function
func (m *WsConn) Close() error {
	args := m.Mock.Called()
	return args.Error(0)
}
