package seed

import (
	"bitbucket.org/airenas/devtasks/internal/pkg/cmdapp"
	"bitbucket.org/airenas/devtasks/internal/pkg/mongo"
	"github.com/spf13/cobra"
)

var appName = "Developer Seeder"

var rootCmd = &cobra.Command{
	Use:   "developerSeeder",
	Short: appName,
	Long:  `Inserts or updates developers in the store`,
	Run:   run,
}

func init() {
	cmdapp.InitApplication(rootCmd)
	rootCmd.PersistentFlags().StringP("file", "f", "", "Developers yaml file, default developers are used if empty")
	cmdapp.Config.BindPFlag("seed.file", rootCmd.PersistentFlags().Lookup("file"))
}

//Execute runs the command
func Execute() {
	cmdapp.Execute(rootCmd)
}

func run(cmd *cobra.Command, args []string) {
	cmdapp.Log.Info("Starting " + appName)
	mongoSessionProvider, err := mongo.NewSessionProvider()
	cmdapp.CheckOrPanic(err, "Can't init mongo")
	defer mongoSessionProvider.Close()

	saver, err := mongo.NewDeveloperSaver(mongoSessionProvider)
	cmdapp.CheckOrPanic(err, "Can't init developer saver")

	n, err := seed(saver, cmdapp.Config.GetString("seed.file"))
	cmdapp.CheckOrPanic(err, "Can't seed developers")
	cmdapp.Log.Infof("Saved %d developers", n)
}
