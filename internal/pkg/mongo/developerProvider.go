package mongo

import (
	"bitbucket.org/airenas/devtasks/internal/pkg/cmdapp"
	"bitbucket.org/airenas/devtasks/internal/pkg/persistence"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DeveloperProvider provides developers from mongo db
type DeveloperProvider struct {
	SessionProvider *SessionProvider
}

//NewDeveloperProvider creates DeveloperProvider instance
func NewDeveloperProvider(sessionProvider *SessionProvider) (*DeveloperProvider, error) {
	if sessionProvider == nil {
		return nil, errors.New("No session provider")
	}
	return &DeveloperProvider{SessionProvider: sessionProvider}, nil
}

//Developers returns all developers in insertion order
func (p *DeveloperProvider) Developers() ([]*persistence.Developer, error) {
	c, ctx, cancel, err := newColl(p.SessionProvider, developerTable)
	if err != nil {
		return nil, err
	}
	defer cancel()

	cursor, err := c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "Can't find developers")
	}
	defer cursor.Close(ctx)
	res := make([]*persistence.Developer, 0)
	if err := cursor.All(ctx, &res); err != nil {
		return nil, errors.Wrap(err, "Can't decode developers")
	}
	cmdapp.Log.Debugf("Loaded %d developers", len(res))
	return res, nil
}

//Names returns developer names keyed by ID
func (p *DeveloperProvider) Names() (map[string]string, error) {
	c, ctx, cancel, err := newColl(p.SessionProvider, developerTable)
	if err != nil {
		return nil, err
	}
	defer cancel()

	cursor, err := c.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"ID": 1, "name": 1}))
	if err != nil {
		return nil, errors.Wrap(err, "Can't find developers")
	}
	defer cursor.Close(ctx)
	res := make(map[string]string)
	for cursor.Next(ctx) {
		var d persistence.Developer
		if err := cursor.Decode(&d); err != nil {
			return nil, errors.Wrap(err, "Can't decode developer")
		}
		res[d.ID] = d.Name
	}
	return res, errors.Wrap(cursor.Err(), "Can't iterate developers")
}

// DeveloperSaver upserts developers to mongo db
type DeveloperSaver struct {
	SessionProvider *SessionProvider
}

//NewDeveloperSaver creates DeveloperSaver instance
func NewDeveloperSaver(sessionProvider *SessionProvider) (*DeveloperSaver, error) {
	if sessionProvider == nil {
		return nil, errors.New("No session provider")
	}
	return &DeveloperSaver{SessionProvider: sessionProvider}, nil
}

//SaveAll upserts developers by name, returns count of inserted or updated records
func (s *DeveloperSaver) SaveAll(developers []*persistence.Developer) (int, error) {
	if len(developers) == 0 {
		return 0, nil
	}
	c, ctx, cancel, err := newColl(s.SessionProvider, developerTable)
	if err != nil {
		return 0, err
	}
	defer cancel()

	models := make([]mongo.WriteModel, 0, len(developers))
	for _, d := range developers {
		models = append(models, mongo.NewUpdateOneModel().SetFilter(bson.M{"name": sanitize(d.Name)}).
			SetUpdate(developerUpdate(d)).SetUpsert(true))
	}
	res, err := c.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return 0, errors.Wrap(err, "Can't save developers")
	}
	return int(res.UpsertedCount + res.ModifiedCount), nil
}

func developerUpdate(d *persistence.Developer) bson.M {
	return bson.M{"$set": bson.M{"period": d.Period, "difficulty": d.Difficulty},
		"$setOnInsert": bson.M{"ID": newID(d.ID)}}
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}
