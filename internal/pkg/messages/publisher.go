package messages

// Publisher publish a message to some topic
type Publisher interface {
	Publish(topic string, msg interface{}) error
}
