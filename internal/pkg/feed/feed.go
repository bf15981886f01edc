package feed

import (
	"bitbucket.org/airenas/devtasks/internal/pkg/utils"
	"github.com/pkg/errors"
)

//Format is a feed's json layout
type Format string

const (
	//FormatFlat - [{"id": name, "zorluk": difficulty, "sure": time}]
	FormatFlat Format = "flat"
	//FormatKeyed - [{name: {"level": difficulty, "estimated_duration": time}}]
	FormatKeyed Format = "keyed"
)

//Feed describes a task provider's endpoint
type Feed struct {
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
	Format Format `yaml:"format"`
}

//Validate checks if feed is configured properly
func Validate(f *Feed) error {
	if f == nil {
		return errors.New("No feed")
	}
	if f.Name == "" {
		return errors.New("No feed name")
	}
	if _, err := utils.ValidateURL(f.URL, f.Name+".url"); err != nil {
		return err
	}
	if f.Format != FormatFlat && f.Format != FormatKeyed {
		return errors.Errorf("Unknown format '%s' for feed '%s'", f.Format, f.Name)
	}
	return nil
}
