package messages

import "time"

//TasksUpdated is the exchange for events fired after task feeds are imported
const TasksUpdated string = "TasksUpdated"

//TasksUpdatedMessage describes finished task import
type TasksUpdatedMessage struct {
	ID    string    `json:"id"`
	Feeds []string  `json:"feeds"`
	Tasks int       `json:"tasks"`
	Time  time.Time `json:"time"`
}
