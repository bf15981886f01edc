package feed

import (
	"io/ioutil"
	"net/http"
	"time"

	"bitbucket.org/airenas/devtasks/internal/pkg/cmdapp"
	"bitbucket.org/airenas/devtasks/internal/pkg/persistence"
	"bitbucket.org/airenas/devtasks/internal/pkg/utils"
	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
)

//Fetcher downloads and decodes task feeds
type Fetcher struct {
	httpClient *http.Client
	newBackOff func() backoff.BackOff
}

//NewFetcher creates Fetcher instance
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{httpClient: &http.Client{Timeout: timeout}, newBackOff: defaultBackOff}
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxElapsedTime = 30 * time.Second
	return backoff.WithMaxRetries(b, 3)
}

//Fetch loads feed's tasks
func (f *Fetcher) Fetch(fd *Feed) ([]*persistence.Task, error) {
	if err := Validate(fd); err != nil {
		return nil, err
	}
	cmdapp.Log.Infof("Fetching %s from %s", fd.Name, utils.URLToLog(fd.URL))
	var data []byte
	op := func() error {
		var err error
		data, err = f.get(fd.URL)
		if err != nil {
			cmdapp.Log.Warnf("Fetch %s failed: %v", fd.Name, err)
		}
		return err
	}
	if err := backoff.Retry(op, f.newBackOff()); err != nil {
		return nil, errors.Wrapf(err, "Can't fetch %s", fd.Name)
	}
	res, err := Decode(fd.Format, fd.Name, data)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't decode %s", fd.Name)
	}
	return res, nil
}

func (f *Fetcher) get(url string) ([]byte, error) {
	resp, err := f.httpClient.Get(url)
	if err != nil {
		return nil, errors.Wrap(err, "Can't call")
	}
	defer resp.Body.Close()
	if err := utils.ValidateResponse(resp); err != nil {
		return nil, err
	}
	return ioutil.ReadAll(resp.Body)
}
