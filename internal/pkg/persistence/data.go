package persistence

import "time"

type (
	//Developer is a stored developer record
	Developer struct {
		ID         string  `bson:"ID"`
		Name       string  `bson:"name"`
		Period     float64 `bson:"period"`
		Difficulty float64 `bson:"difficulty"`
	}

	//Task is a stored task record loaded from a feed
	Task struct {
		ID         string    `bson:"ID"`
		Provider   string    `bson:"provider"`
		Name       string    `bson:"name"`
		Time       float64   `bson:"time"`
		Difficulty float64   `bson:"difficulty"`
		Updated    time.Time `bson:"updated,omitempty"`
	}
)

//Skill returns developer's skill factor
func (d *Developer) Skill() float64 {
	return d.Difficulty * d.Period
}

//Cost returns task's cost
func (t *Task) Cost() float64 {
	return t.Time * t.Difficulty
}
