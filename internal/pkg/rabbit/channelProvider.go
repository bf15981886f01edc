package rabbit

import (
	"sync"

	"bitbucket.org/airenas/devtasks/internal/pkg/cmdapp"
	"github.com/pkg/errors"
	"github.com/streadway/amqp"
)

//ChannelProvider keeps one amqp connection and channel, reconnects on demand
type ChannelProvider struct {
	url  string
	conn *amqp.Connection
	ch   *amqp.Channel
	m    sync.Mutex // struct field mutex
}

type runOnChannelFunc func(*amqp.Channel) error

//NewChannelProvider initializes channel provider from messageServer.* config
func NewChannelProvider() (*ChannelProvider, error) {
	host, err := cmdapp.NonEmpty("messageServer.url")
	if err != nil {
		return nil, err
	}
	url, err := brokerURL(host, cmdapp.Config.GetString("messageServer.user"),
		cmdapp.Config.GetString("messageServer.pass"))
	if err != nil {
		return nil, err
	}
	return &ChannelProvider{url: url}, nil
}

func brokerURL(host, user, pass string) (string, error) {
	if user == "" {
		return "amqp://" + host, nil
	}
	if pass == "" {
		return "", errors.New("No messageServer.pass provided")
	}
	return "amqp://" + user + ":" + pass + "@" + host, nil
}

//Channel returns cached channel or connects to the broker
func (pr *ChannelProvider) Channel() (*amqp.Channel, error) {
	pr.m.Lock()
	defer pr.m.Unlock()
	return pr.channelLocked()
}

func (pr *ChannelProvider) channelLocked() (*amqp.Channel, error) {
	if pr.ch != nil && pr.conn != nil && !pr.conn.IsClosed() {
		return pr.ch, nil
	}
	pr.closeLocked()
	conn, err := amqp.Dial(pr.url)
	if err != nil {
		return nil, errors.Wrap(err, "Can't connect to rabbit broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		cmdapp.LogIf(conn.Close())
		return nil, errors.Wrap(err, "Can't create channel")
	}
	pr.conn, pr.ch = conn, ch
	return ch, nil
}

//RunOnChannelWithRetry invokes f on channel, reopens the channel and retries once on failure
func (pr *ChannelProvider) RunOnChannelWithRetry(f runOnChannelFunc) error {
	ch, err := pr.Channel()
	if err != nil {
		return errors.Wrap(err, "Can't init channel")
	}
	if err = f(ch); err == nil {
		return nil
	}
	cmdapp.Log.Infof("Retry opening channel after: %v", err)
	pr.Close()
	if ch, err = pr.Channel(); err != nil {
		return errors.Wrap(err, "Can't init channel")
	}
	return f(ch)
}

//Healthy checks if broker is reachable
func (pr *ChannelProvider) Healthy() error {
	_, err := pr.Channel()
	return err
}

//Close closes channel and connection
func (pr *ChannelProvider) Close() {
	pr.m.Lock()
	defer pr.m.Unlock()
	pr.closeLocked()
}

func (pr *ChannelProvider) closeLocked() {
	if pr.ch != nil {
		_ = pr.ch.Close()
	}
	if pr.conn != nil {
		_ = pr.conn.Close()
	}
	pr.ch, pr.conn = nil, nil
}
