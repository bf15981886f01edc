package rabbit

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/streadway/amqp"
)

//DeclareExchange declares durable fanout exchange
func DeclareExchange(ch *amqp.Channel, name string) error {
	return ch.ExchangeDeclare(
		name,
		amqp.ExchangeFanout,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
}

//NewEventChannel declares a temporary queue bound to the exchange and starts consuming it
func NewEventChannel(pr *ChannelProvider, exchange string) (<-chan amqp.Delivery, error) {
	var res <-chan amqp.Delivery
	err := pr.RunOnChannelWithRetry(func(ch *amqp.Channel) error {
		if err := DeclareExchange(ch, exchange); err != nil {
			return errors.Wrapf(err, "Can't declare exchange %s", exchange)
		}
		q, err := ch.QueueDeclare(
			"",
			false, // durable
			true,  // delete when unused
			true,  // exclusive
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			return errors.Wrap(err, "Can't declare queue")
		}
		if err := ch.QueueBind(q.Name, "", exchange, false, nil); err != nil {
			return errors.Wrapf(err, "Can't bind queue %s", q.Name)
		}
		res, err = ch.Consume(q.Name, "", false, true, false, false, nil)
		return errors.Wrapf(err, "Can't consume %s", q.Name)
	})
	return res, err
}

func getBytes(msg interface{}) ([]byte, error) {
	if b, ok := msg.([]byte); ok {
		return b, nil
	}
	return json.Marshal(msg)
}
