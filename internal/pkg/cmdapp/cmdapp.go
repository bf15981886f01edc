package cmdapp

import (
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var configFile = ""

// InitApplication binds env variables and config file flag to the command
func InitApplication(rootCommand *cobra.Command) {
	// env MESSAGESERVER_URL is found with key messageServer.url
	Config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Config.AutomaticEnv()
	cobra.OnInitialize(initConfig)
	rootCommand.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is config.yaml near the app or in working dir)")
}

func initConfig() {
	if configFile != "" {
		Config.SetConfigFile(configFile)
	} else {
		Config.SetConfigName("config")
		for _, p := range configPaths() {
			Config.AddConfigPath(p)
		}
	}
	if err := Config.ReadInConfig(); err != nil {
		if configFile != "" {
			Log.Error(errors.Wrapf(err, "Can't read config %s", configFile))
			panic(1)
		}
		Log.Warn("Can't read config: ", err)
	}
	initLog()
	Log.Info("Config loaded from: ", Config.ConfigFileUsed())
}

func configPaths() []string {
	res := []string{"."}
	ex, err := os.Executable()
	if err != nil {
		Log.Warn("Can't get the app directory: ", err)
		return res
	}
	return append([]string{filepath.Dir(ex)}, res...)
}

func logPanic() {
	if r := recover(); r != nil {
		Log.Error(r)
		os.Exit(1)
	}
}

//Execute runs the command, logs panic and exits with code 1 on failure
func Execute(cmd *cobra.Command) {
	defer logPanic()
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}

//CheckOrPanic panics if err != nil
func CheckOrPanic(err error, msg string) {
	if err == nil {
		return
	}
	if msg != "" {
		err = errors.Wrap(err, msg)
	}
	panic(err)
}

//LogIf logs error if err != nil
func LogIf(err error) {
	if err != nil {
		Log.Error(err)
	}
}

//NewSignalChannel returns new channel that receives SIGINT or SIGTERM
func NewSignalChannel() <-chan os.Signal {
	fc := make(chan os.Signal, 1)
	signal.Notify(fc, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	return fc
}
