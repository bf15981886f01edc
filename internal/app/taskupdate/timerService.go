package taskupdate

import (
	"time"

	"bitbucket.org/airenas/devtasks/internal/pkg/cmdapp"
	"github.com/pkg/errors"
)

func startTimer(data *ServiceData) error {
	if data.runEvery <= 0 {
		return errors.Errorf("Wrong run interval %v", data.runEvery)
	}
	cmdapp.Log.Infof("Starting timer service every %v", data.runEvery)
	go serviceLoop(data)
	return nil
}

func serviceLoop(data *ServiceData) {
	ticker := time.NewTicker(data.runEvery)
	// run on startup
	runUpdate(data)
mainloop:
	for {
		select {
		case <-ticker.C:
			runUpdate(data)
		case <-data.qChan:
			ticker.Stop()
			break mainloop
		}
	}
	cmdapp.Log.Infof("Stopped timer service")
	close(data.workWaitChan)
}
