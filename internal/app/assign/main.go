package assign

import (
	"time"

	"bitbucket.org/airenas/devtasks/internal/pkg/assignment"
	"bitbucket.org/airenas/devtasks/internal/pkg/cmdapp"
	"bitbucket.org/airenas/devtasks/internal/pkg/messages"
	"bitbucket.org/airenas/devtasks/internal/pkg/metrics"
	"bitbucket.org/airenas/devtasks/internal/pkg/mongo"
	"bitbucket.org/airenas/devtasks/internal/pkg/rabbit"
	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/streadway/amqp"
)

var appName = "Developer Task Assign Service"

var rootCmd = &cobra.Command{
	Use:   "assignService",
	Short: appName,
	Long:  `HTTP server to provide developer - task assignments`,
	Run:   run,
}

func init() {
	cmdapp.InitApplication(rootCmd)
	rootCmd.PersistentFlags().Int32P("port", "", 8000, "Default service port")
	cmdapp.Config.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	rootCmd.PersistentFlags().StringP("strategy", "s", "", "Assignment strategy: greedy or optimal")
	cmdapp.Config.BindPFlag("assignment.strategy", rootCmd.PersistentFlags().Lookup("strategy"))
	cmdapp.Config.SetDefault("port", 8080)
	cmdapp.Config.SetDefault("assignment.strategy", string(assignment.StrategyGreedy))
	cmdapp.Config.SetDefault("messageServer.tasksExchange", messages.TasksUpdated)
}

//Execute starts the server
func Execute() {
	cmdapp.Execute(rootCmd)
}

func run(cmd *cobra.Command, args []string) {
	cmdapp.Log.Info("Starting " + appName)
	data := newServiceData()
	err := initMetrics(data)
	cmdapp.CheckOrPanic(err, "Can't init metrics")

	st, err := assignment.ParseStrategy(cmdapp.Config.GetString("assignment.strategy"))
	cmdapp.CheckOrPanic(err, "Can't init strategy")
	data.Solver, err = assignment.NewSolver(st)
	cmdapp.CheckOrPanic(err, "Can't init solver")
	cmdapp.Log.Infof("Strategy: %s", st)

	mongoSessionProvider, err := mongo.NewSessionProvider()
	cmdapp.CheckOrPanic(err, "Can't init mongo")
	defer mongoSessionProvider.Close()
	data.health.AddReadinessCheck("mongo", healthcheck.Async(mongoSessionProvider.Healthy, 10*time.Second))

	dp, err := mongo.NewDeveloperProvider(mongoSessionProvider)
	cmdapp.CheckOrPanic(err, "Can't init developer provider")
	data.Developers, data.Names = dp, dp
	data.Tasks, err = mongo.NewTaskStore(mongoSessionProvider)
	cmdapp.CheckOrPanic(err, "Can't init task provider")

	if cmdapp.Config.GetString("messageServer.url") != "" {
		msgChannelProvider, err := rabbit.NewChannelProvider()
		cmdapp.CheckOrPanic(err, "Can't init rabbit channel")
		defer msgChannelProvider.Close()
		data.health.AddLivenessCheck("rabbit", healthcheck.Async(msgChannelProvider.Healthy, 10*time.Second))
		data.EventChannelFunc = func() (<-chan amqp.Delivery, error) {
			return rabbit.NewEventChannel(msgChannelProvider, tasksExchange())
		}
	} else {
		cmdapp.Log.Warn("No messageServer.url, events are not listened")
	}

	data.Port = cmdapp.Config.GetInt("port")
	err = StartWebServer(data)
	cmdapp.CheckOrPanic(err, "Can't start web server")
}

func tasksExchange() string {
	return cmdapp.Config.GetString("messageServer.tasksExchange")
}

func newServiceData() *ServiceData {
	return &ServiceData{health: healthcheck.NewHandler(), hub: newWsHub()}
}

func initMetrics(data *ServiceData) error {
	namespace := "assign_service"
	rd := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assignments_request_durations_seconds",
			Help:      "Assignments request latency distributions.",
		}, nil)
	if err := metrics.Register(rd); err != nil {
		return err
	}
	data.metrics.assignResponseDur = rd
	sd := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_durations_seconds",
			Help:      "Assignment calculation latency distributions.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 15),
		})
	if err := metrics.Register(sd); err != nil {
		return err
	}
	data.metrics.solveDur = sd
	ag := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "assigned_pairs",
		Help:      "Developer - task pairs in the last calculation.",
	})
	if err := metrics.Register(ag); err != nil {
		return err
	}
	data.metrics.assigned = ag
	wg := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "websocket_connections",
		Help:      "Open websocket connections.",
	})
	if err := metrics.Register(wg); err != nil {
		return err
	}
	data.metrics.wsConnections = wg
	return nil
}
