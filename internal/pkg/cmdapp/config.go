package cmdapp

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

//Config is a viper based application config
var Config = viper.New()

//Log is applications logger
var Log = logrus.New()

//NonEmpty returns config string value or error if the value is not set
func NonEmpty(key string) (string, error) {
	res := Config.GetString(key)
	if res == "" {
		return "", errors.Errorf("No %s provided", key)
	}
	return res, nil
}
