package mongo

import (
	"time"

	"bitbucket.org/airenas/devtasks/internal/pkg/cmdapp"
	"bitbucket.org/airenas/devtasks/internal/pkg/persistence"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TaskStore loads and saves tasks in mongo db
type TaskStore struct {
	SessionProvider *SessionProvider
	now             func() time.Time
}

//NewTaskStore creates TaskStore instance
func NewTaskStore(sessionProvider *SessionProvider) (*TaskStore, error) {
	if sessionProvider == nil {
		return nil, errors.New("No session provider")
	}
	return &TaskStore{SessionProvider: sessionProvider, now: time.Now}, nil
}

//Tasks returns all tasks in insertion order
func (s *TaskStore) Tasks() ([]*persistence.Task, error) {
	c, ctx, cancel, err := newColl(s.SessionProvider, taskTable)
	if err != nil {
		return nil, err
	}
	defer cancel()

	cursor, err := c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "Can't find tasks")
	}
	defer cursor.Close(ctx)
	res := make([]*persistence.Task, 0)
	if err := cursor.All(ctx, &res); err != nil {
		return nil, errors.Wrap(err, "Can't decode tasks")
	}
	cmdapp.Log.Debugf("Loaded %d tasks", len(res))
	return res, nil
}

//SaveAll upserts provider's tasks by name, returns count of inserted or updated records
func (s *TaskStore) SaveAll(provider string, tasks []*persistence.Task) (int, error) {
	if len(tasks) == 0 {
		return 0, nil
	}
	c, ctx, cancel, err := newColl(s.SessionProvider, taskTable)
	if err != nil {
		return 0, err
	}
	defer cancel()

	now := s.now()
	models := make([]mongo.WriteModel, 0, len(tasks))
	for _, t := range tasks {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"provider": sanitize(provider), "name": sanitize(t.Name)}).
			SetUpdate(taskUpdate(t, now)).SetUpsert(true))
	}
	res, err := c.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return 0, errors.Wrapf(err, "Can't save tasks for '%s'", provider)
	}
	return int(res.UpsertedCount + res.ModifiedCount), nil
}

func taskUpdate(t *persistence.Task, now time.Time) bson.M {
	return bson.M{"$set": bson.M{"time": t.Time, "difficulty": t.Difficulty, "updated": now},
		"$setOnInsert": bson.M{"ID": newID(t.ID)}}
}
