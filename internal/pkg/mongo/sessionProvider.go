package mongo

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"bitbucket.org/airenas/devtasks/internal/pkg/cmdapp"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//IndexData keeps index creation data
type IndexData struct {
	Table  string
	Fields []string
	Unique bool
}

func newIndexData(table string, unique bool, fields ...string) IndexData {
	return IndexData{Table: table, Fields: fields, Unique: unique}
}

//SessionProvider connects and provides session for mongo DB
type SessionProvider struct {
	client  *mongo.Client
	URL     string
	indexes []IndexData
	m       sync.Mutex // struct field mutex
}

//NewSessionProvider creates Mongo session provider
func NewSessionProvider() (*SessionProvider, error) {
	url, err := cmdapp.NonEmpty("mongo.url")
	if err != nil {
		return nil, err
	}
	return &SessionProvider{URL: url, indexes: indexData}, nil
}

//Close closes mongo client
func (sp *SessionProvider) Close() {
	sp.m.Lock()
	defer sp.m.Unlock()

	if sp.client != nil {
		ctx, cancel := mongoContext()
		defer cancel()
		cmdapp.LogIf(sp.client.Disconnect(ctx))
		sp.client = nil
	}
}

//NewSession creates mongo session
func (sp *SessionProvider) NewSession() (mongo.Session, error) {
	sp.m.Lock()
	defer sp.m.Unlock()

	if sp.client == nil {
		cmdapp.Log.Info("Dial mongo: " + hidePass(sp.URL))
		ctx, cancel := mongoContext()
		defer cancel()
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(sp.URL))
		if err != nil {
			return nil, errors.Wrap(err, "Can't dial to mongo")
		}
		err = checkIndexes(ctx, client, sp.indexes)
		if err != nil {
			cmdapp.LogIf(client.Disconnect(context.Background()))
			return nil, errors.Wrap(err, "Can't create indexes")
		}
		sp.client = client
	}
	return sp.client.StartSession()
}

//Healthy checks if mongo is reachable
func (sp *SessionProvider) Healthy() error {
	session, err := sp.NewSession()
	if err != nil {
		return err
	}
	defer session.EndSession(context.Background())
	ctx, cancel := mongoContext()
	defer cancel()
	return session.Client().Ping(ctx, nil)
}

func checkIndexes(ctx context.Context, client *mongo.Client, indexes []IndexData) error {
	for _, index := range indexes {
		err := checkIndex(ctx, client, index)
		if err != nil {
			return errors.Wrap(err, "Can't create index: "+index.Table+":"+strings.Join(index.Fields, ","))
		}
	}
	return nil
}

func checkIndex(ctx context.Context, client *mongo.Client, indexData IndexData) error {
	c := client.Database(store).Collection(indexData.Table)
	_, err := c.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: indexKeys(indexData.Fields),
		Options: options.Index().SetUnique(indexData.Unique)})
	return err
}

func indexKeys(fields []string) bson.D {
	res := bson.D{}
	for _, f := range fields {
		res = append(res, bson.E{Key: f, Value: 1})
	}
	return res
}

func newColl(sessionProvider *SessionProvider, table string) (*mongo.Collection, context.Context, func(), error) {
	session, err := sessionProvider.NewSession()
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := mongoContext()
	return session.Client().Database(store).Collection(table), ctx, func() {
		cancel()
		session.EndSession(context.Background())
	}, nil
}

func mongoContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func sanitize(s string) string {
	return strings.NewReplacer("$", "", "{", "", "}", "").Replace(s)
}

func hidePass(s string) string {
	u, err := url.Parse(s)
	if err != nil {
		cmdapp.Log.Warn("Can't parse mongo url.")
		return ""
	}
	if u.User != nil {
		if _, ps := u.User.Password(); ps {
			u.User = url.UserPassword(u.User.Username(), "----")
		}
	}
	return u.String()
}
