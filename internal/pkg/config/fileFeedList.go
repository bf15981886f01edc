package config

import (
	"sync"

	"bitbucket.org/airenas/devtasks/internal/pkg/cmdapp"
	"bitbucket.org/airenas/devtasks/internal/pkg/feed"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// FileFeedList struct loads task feeds from yaml file and reloads them on change
type FileFeedList struct {
	file  string
	v     *viper.Viper
	lock  sync.RWMutex
	feeds []*feed.Feed
}

//NewFileFeedList creates FileFeedList instance
func NewFileFeedList(file string) (*FileFeedList, error) {
	cmdapp.Log.Infof("Init feed list from: %s", file)
	if file == "" {
		return nil, errors.New("No feeds file provided")
	}
	f := FileFeedList{file: file}
	f.v = viper.New()
	f.v.SetConfigFile(file)
	f.v.SetConfigType("yml")
	err := f.v.ReadInConfig()
	if err != nil {
		return nil, errors.Wrap(err, "Can't read feeds file: "+file)
	}
	if err := f.reload(); err != nil {
		return nil, err
	}

	f.v.WatchConfig()
	f.v.OnConfigChange(func(e fsnotify.Event) {
		if err := f.reload(); err != nil {
			cmdapp.Log.Error(errors.Wrap(err, "Can't reload feeds, keeping old ones"))
			return
		}
		cmdapp.Log.Infof("Feeds reloaded from: %s", file)
	})
	return &f, nil
}

func (fs *FileFeedList) reload() error {
	feeds, err := parseFeeds(fs.v)
	if err != nil {
		return errors.Wrap(err, "Can't parse feeds: "+fs.file)
	}
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.feeds = feeds
	return nil
}

func parseFeeds(v *viper.Viper) ([]*feed.Feed, error) {
	var res []*feed.Feed
	if err := v.UnmarshalKey("feeds", &res); err != nil {
		return nil, err
	}
	names := make(map[string]bool)
	for _, f := range res {
		if err := feed.Validate(f); err != nil {
			return nil, err
		}
		if names[f.Name] {
			return nil, errors.Errorf("Duplicate feed '%s'", f.Name)
		}
		names[f.Name] = true
	}
	return res, nil
}

// All returns a copy of configured feeds
func (fs *FileFeedList) All() []*feed.Feed {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	res := make([]*feed.Feed, len(fs.feeds))
	copy(res, fs.feeds)
	return res
}
