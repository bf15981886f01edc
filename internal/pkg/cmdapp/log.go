package cmdapp

import "github.com/heirko/go-contrib/logrusHelper"

var defaultLogConfig = map[string]interface{}{
	"level":                              "info",
	"formatter.name":                     "text",
	"formatter.options.full_timestamp":   true,
	"formatter.options.timestamp_format": "2006-01-02T15:04:05.000",
}

// configures Log from 'logger' section, LOGGER_LEVEL env overrides the file
func initLog() {
	Config.SetDefault("logger", defaultLogConfig)
	c := logrusHelper.UnmarshalConfiguration(Config.Sub("logger"))
	if err := logrusHelper.SetConfig(Log, c); err != nil {
		Log.Error("Can't init log ", err)
	}
}
