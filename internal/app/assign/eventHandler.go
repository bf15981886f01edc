package assign

import (
	"encoding/json"
	"time"

	"bitbucket.org/airenas/devtasks/internal/pkg/cmdapp"
	"bitbucket.org/airenas/devtasks/internal/pkg/messages"
	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
	"github.com/streadway/amqp"
)

type eventChannelFunc func() (<-chan amqp.Delivery, error)

func newReconnectBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = time.Minute
	b.MaxElapsedTime = 0
	return b
}

func registerQueue(data *ServiceData, quitChan <-chan struct{}, b backoff.BackOff) {
	b.Reset()
	for {
		select {
		case <-quitChan:
			cmdapp.Log.Infof("Quit listening queue")
			return
		default:
		}
		cmdapp.Log.Infof("Trying listening queue")
		msgs, err := data.EventChannelFunc()
		if err != nil {
			cmdapp.Log.Error(err)
			wait := b.NextBackOff()
			if wait == backoff.Stop {
				cmdapp.Log.Error("Give up listening queue")
				return
			}
			cmdapp.Log.Infof("Wait before reconnect %v", wait)
			select {
			case <-quitChan:
				cmdapp.Log.Infof("Quit listening queue")
				return
			case <-time.After(wait):
			}
			continue
		}
		b.Reset()
		listenQueue(msgs, data)
	}
}

func listenQueue(channel <-chan amqp.Delivery, data *ServiceData) {
	for d := range channel {
		err := processMsg(&d, data)
		if err != nil {
			cmdapp.Log.Errorf("Can't process message %s\n%s", d.MessageId, string(d.Body))
			cmdapp.Log.Error(err)
			cmdapp.LogIf(d.Nack(false, false))
			continue
		}
		cmdapp.LogIf(d.Ack(false))
	}
	cmdapp.Log.Infof("Stopped listening queue")
}

func processMsg(d *amqp.Delivery, data *ServiceData) error {
	var msg messages.TasksUpdatedMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		cmdapp.Log.Warnf("Can't decode event: %v", err)
	}
	cmdapp.Log.Infof("Got event %s, tasks: %d", msg.ID, msg.Tasks)
	res, err := calcAssignments(data)
	if err != nil {
		return errors.Wrap(err, "Can't recalculate assignments")
	}
	sent := data.hub.publish(res)
	cmdapp.Log.Infof("Sent assignments to %d connections", sent)
	return nil
}
