package assign

import (
	"sync/atomic"
	"testing"
	"time"

	"bitbucket.org/airenas/devtasks/internal/pkg/persistence"
	"bitbucket.org/airenas/devtasks/internal/pkg/test/mocks"
	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListenQueue_Publishes(t *testing.T) {
	initTest(t)
	devProviderMock.On("Developers").Return(testDevelopers(), nil)
	taskProviderMock.On("Tasks").Return(testTasks(), nil)
	nameProviderMock.On("Names").Return(map[string]string{"d1": "DEV 1", "d2": "DEV 2"}, nil)
	data := newTestData(t)
	c := &mocks.WsConn{}
	c.On("WriteJSON", mock.Anything).Return(nil)
	assert.Nil(t, data.hub.add(c, nil))
	ack := &mocks.Acknowledger{}
	ack.On("Ack", uint64(1), false).Return(nil)

	ch := make(chan amqp.Delivery, 1)
	ch <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte(`{"id":"id1","tasks":2}`)}
	close(ch)
	listenQueue(ch, data)

	c.AssertNumberOfCalls(t, "WriteJSON", 1)
	ack.AssertNumberOfCalls(t, "Ack", 1)
	if assert.NotNil(t, data.hub.lastResult()) {
		assert.Equal(t, 2, len(data.hub.lastResult().Assignments))
	}
}

func TestListenQueue_Nacks(t *testing.T) {
	initTest(t)
	devProviderMock.On("Developers").Return(nil, errors.New("olia"))
	data := newTestData(t)
	ack := &mocks.Acknowledger{}
	ack.On("Nack", uint64(1), false, false).Return(nil)

	ch := make(chan amqp.Delivery, 1)
	ch <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte(`olia`)}
	close(ch)
	listenQueue(ch, data)

	ack.AssertNumberOfCalls(t, "Nack", 1)
	assert.Nil(t, data.hub.lastResult())
}

func testBackOff() backoff.BackOff {
	return backoff.NewConstantBackOff(time.Millisecond)
}

func TestRegisterQueue_RetriesOnFailure(t *testing.T) {
	initTest(t)
	data := newTestData(t)
	var calls int32
	data.EventChannelFunc = func() (<-chan amqp.Delivery, error) {
		atomic.AddInt32(&calls, 1)
		return nil, errors.New("olia")
	}
	qc := make(chan struct{})
	done := make(chan struct{})
	go func() {
		registerQueue(data, qc, testBackOff())
		close(done)
	}()
	time.Sleep(50 * time.Millisecond)
	close(qc)
	<-done
	assert.True(t, atomic.LoadInt32(&calls) > 1)
}

func TestRegisterQueue_Restores(t *testing.T) {
	initTest(t)
	data := newTestData(t)
	var calls int32
	ch := make(chan amqp.Delivery)
	data.EventChannelFunc = func() (<-chan amqp.Delivery, error) {
		if atomic.AddInt32(&calls, 1) < 3 {
			return nil, errors.New("olia")
		}
		return ch, nil
	}
	qc := make(chan struct{})
	done := make(chan struct{})
	go func() {
		registerQueue(data, qc, testBackOff())
		close(done)
	}()
	time.Sleep(50 * time.Millisecond)
	close(qc)
	close(ch)
	<-done
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestRegisterQueue_StopsOnBackOffStop(t *testing.T) {
	initTest(t)
	data := newTestData(t)
	data.EventChannelFunc = func() (<-chan amqp.Delivery, error) {
		return nil, errors.New("olia")
	}
	done := make(chan struct{})
	go func() {
		registerQueue(data, make(chan struct{}), &backoff.StopBackOff{})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		assert.Fail(t, "registerQueue did not stop")
	}
}

func TestProcessMsg_WrongBody(t *testing.T) {
	initTest(t)
	devProviderMock.On("Developers").Return([]*persistence.Developer{}, nil)
	taskProviderMock.On("Tasks").Return([]*persistence.Task{}, nil)
	data := newTestData(t)
	err := processMsg(&amqp.Delivery{Body: []byte("olia")}, data)
	assert.Nil(t, err)
	assert.NotNil(t, data.hub.lastResult())
}
