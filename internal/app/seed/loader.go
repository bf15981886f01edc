package seed

import (
	"fmt"
	"io/ioutil"

	"bitbucket.org/airenas/devtasks/internal/pkg/persistence"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type developerData struct {
	Name       string  `yaml:"name"`
	Period     float64 `yaml:"period"`
	Difficulty float64 `yaml:"difficulty"`
}

type seedData struct {
	Developers []developerData `yaml:"developers"`
}

//DeveloperSaver upserts developers
type DeveloperSaver interface {
	SaveAll(developers []*persistence.Developer) (int, error)
}

func loadFile(file string) ([]*persistence.Developer, error) {
	fData, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "Can't load: "+file)
	}
	res, err := loadYaml(fData)
	if err != nil {
		return nil, errors.Wrap(err, "Can't load: "+file)
	}
	return res, nil
}

func loadYaml(data []byte) ([]*persistence.Developer, error) {
	sd := seedData{}
	err := yaml.UnmarshalStrict(data, &sd)
	if err != nil {
		return nil, errors.Wrap(err, "Can't unmarshal")
	}
	if len(sd.Developers) == 0 {
		return nil, errors.New("No developers in yaml")
	}
	names := make(map[string]bool)
	res := make([]*persistence.Developer, 0, len(sd.Developers))
	for i, d := range sd.Developers {
		if err := validateDeveloper(d); err != nil {
			return nil, errors.Wrapf(err, "Wrong developer %d", i)
		}
		if names[d.Name] {
			return nil, errors.Errorf("Duplicate developer '%s'", d.Name)
		}
		names[d.Name] = true
		res = append(res, &persistence.Developer{Name: d.Name, Period: d.Period, Difficulty: d.Difficulty})
	}
	return res, nil
}

// zero skill makes the whole assignment fail, so such developers are not accepted
func validateDeveloper(d developerData) error {
	if d.Name == "" {
		return errors.New("No name")
	}
	if d.Period <= 0 {
		return errors.Errorf("Wrong period %v", d.Period)
	}
	if d.Difficulty <= 0 {
		return errors.Errorf("Wrong difficulty %v", d.Difficulty)
	}
	return nil
}

func defaultDevelopers() []*persistence.Developer {
	res := make([]*persistence.Developer, 0, 5)
	for i := 1; i <= 5; i++ {
		res = append(res, &persistence.Developer{Name: fmt.Sprintf("DEV %d", i), Period: 1, Difficulty: float64(i)})
	}
	return res
}

func seed(saver DeveloperSaver, file string) (int, error) {
	var devs []*persistence.Developer
	if file == "" {
		devs = defaultDevelopers()
	} else {
		var err error
		if devs, err = loadFile(file); err != nil {
			return 0, err
		}
	}
	n, err := saver.SaveAll(devs)
	if err != nil {
		return 0, errors.Wrap(err, "Can't save developers")
	}
	return n, nil
}
