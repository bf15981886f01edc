package taskupdate

import (
	"time"

	"bitbucket.org/airenas/devtasks/internal/pkg/cmdapp"
	"bitbucket.org/airenas/devtasks/internal/pkg/config"
	"bitbucket.org/airenas/devtasks/internal/pkg/feed"
	"bitbucket.org/airenas/devtasks/internal/pkg/messages"
	"bitbucket.org/airenas/devtasks/internal/pkg/mongo"
	"bitbucket.org/airenas/devtasks/internal/pkg/rabbit"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var appName = "Task Update Service"

var rootCmd = &cobra.Command{
	Use:   "taskUpdateService",
	Short: appName,
	Long:  `Loads tasks from the configured providers into the task store`,
	Run:   run,
}

func init() {
	cmdapp.InitApplication(rootCmd)
	rootCmd.PersistentFlags().DurationP("every", "e", 0, "Run update periodically, 0 - run once")
	cmdapp.Config.BindPFlag("update.every", rootCmd.PersistentFlags().Lookup("every"))
	rootCmd.PersistentFlags().StringP("feeds", "f", "", "Feeds config file")
	cmdapp.Config.BindPFlag("feeds.path", rootCmd.PersistentFlags().Lookup("feeds"))
	cmdapp.Config.SetDefault("feeds.timeout", 30*time.Second)
	cmdapp.Config.SetDefault("messageServer.tasksExchange", messages.TasksUpdated)
}

//Execute starts the service
func Execute() {
	cmdapp.Execute(rootCmd)
}

func run(cmd *cobra.Command, args []string) {
	cmdapp.Log.Info("Starting " + appName)
	data := &ServiceData{}
	var err error
	data.Feeds, err = config.NewFileFeedList(cmdapp.Config.GetString("feeds.path"))
	cmdapp.CheckOrPanic(err, "Can't init feeds")
	data.Fetcher = feed.NewFetcher(cmdapp.Config.GetDuration("feeds.timeout"))

	mongoSessionProvider, err := mongo.NewSessionProvider()
	cmdapp.CheckOrPanic(err, "Can't init mongo")
	defer mongoSessionProvider.Close()
	data.Saver, err = mongo.NewTaskStore(mongoSessionProvider)
	cmdapp.CheckOrPanic(err, "Can't init task store")

	if cmdapp.Config.GetString("messageServer.url") != "" {
		msgChannelProvider, err := rabbit.NewChannelProvider()
		cmdapp.CheckOrPanic(err, "Can't init rabbit channel")
		defer msgChannelProvider.Close()
		data.Publisher = rabbit.NewPublisher(msgChannelProvider)
		data.Exchange = cmdapp.Config.GetString("messageServer.tasksExchange")
	} else {
		cmdapp.Log.Warn("No messageServer.url, events are not published")
	}
	cmdapp.CheckOrPanic(validate(data), "Wrong service data")

	data.runEvery = cmdapp.Config.GetDuration("update.every")
	if data.runEvery <= 0 {
		res := runUpdate(data)
		if len(res) > 0 && failed(res) == len(res) {
			cmdapp.CheckOrPanic(errors.New("All feeds failed"), "Can't update tasks")
		}
		return
	}

	data.qChan = make(chan struct{})
	data.workWaitChan = make(chan struct{})
	err = startTimer(data)
	cmdapp.CheckOrPanic(err, "Can't start timer")
	<-cmdapp.NewSignalChannel()
	cmdapp.Log.Info("Got exit signal")
	close(data.qChan)
	<-data.workWaitChan
}
