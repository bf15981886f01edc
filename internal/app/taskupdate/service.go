package taskupdate

import (
	"time"

	"bitbucket.org/airenas/devtasks/internal/pkg/cmdapp"
	"bitbucket.org/airenas/devtasks/internal/pkg/feed"
	"bitbucket.org/airenas/devtasks/internal/pkg/messages"
	"bitbucket.org/airenas/devtasks/internal/pkg/persistence"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

//FeedList returns configured task feeds
type FeedList interface {
	All() []*feed.Feed
}

//Fetcher loads tasks of one feed
type Fetcher interface {
	Fetch(f *feed.Feed) ([]*persistence.Task, error)
}

//TaskSaver upserts provider's tasks
type TaskSaver interface {
	SaveAll(provider string, tasks []*persistence.Task) (int, error)
}

// ServiceData keeps data required for update work
type ServiceData struct {
	Feeds     FeedList
	Fetcher   Fetcher
	Saver     TaskSaver
	Publisher messages.Publisher // optional
	Exchange  string

	runEvery     time.Duration
	qChan        chan struct{}
	workWaitChan chan struct{}
}

type feedResult struct {
	Name  string
	Count int
	Err   error
}

func validate(data *ServiceData) error {
	if data.Feeds == nil {
		return errors.New("No feed list")
	}
	if data.Fetcher == nil {
		return errors.New("No fetcher")
	}
	if data.Saver == nil {
		return errors.New("No task saver")
	}
	if data.Publisher != nil && data.Exchange == "" {
		return errors.New("No exchange")
	}
	return nil
}

func runUpdate(data *ServiceData) []feedResult {
	feeds := data.Feeds.All()
	cmdapp.Log.Infof("Updating %d feeds", len(feeds))
	res := make([]feedResult, 0, len(feeds))
	for _, f := range feeds {
		fr := updateFeed(data, f)
		if fr.Err != nil {
			cmdapp.Log.Error(fr.Err)
		} else {
			cmdapp.Log.Infof("Feed %s updated, saved %d tasks", fr.Name, fr.Count)
		}
		res = append(res, fr)
	}
	cmdapp.LogIf(publishUpdate(data, res))
	return res
}

func updateFeed(data *ServiceData, f *feed.Feed) feedResult {
	res := feedResult{Name: f.Name}
	tasks, err := data.Fetcher.Fetch(f)
	if err != nil {
		res.Err = errors.Wrapf(err, "Can't fetch %s", f.Name)
		return res
	}
	res.Count, err = data.Saver.SaveAll(f.Name, tasks)
	if err != nil {
		res.Err = errors.Wrapf(err, "Can't save %s", f.Name)
	}
	return res
}

func publishUpdate(data *ServiceData, res []feedResult) error {
	if data.Publisher == nil {
		return nil
	}
	msg := messages.TasksUpdatedMessage{ID: uuid.New().String(), Feeds: []string{}, Time: time.Now()}
	for _, fr := range res {
		if fr.Err == nil {
			msg.Feeds = append(msg.Feeds, fr.Name)
			msg.Tasks += fr.Count
		}
	}
	if len(msg.Feeds) == 0 {
		cmdapp.Log.Info("No feeds updated, skip event")
		return nil
	}
	return errors.Wrap(data.Publisher.Publish(data.Exchange, msg), "Can't publish update")
}

func failed(res []feedResult) int {
	c := 0
	for _, fr := range res {
		if fr.Err != nil {
			c++
		}
	}
	return c
}
