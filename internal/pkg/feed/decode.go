package feed

import (
	"encoding/json"
	"sort"

	"bitbucket.org/airenas/devtasks/internal/pkg/cmdapp"
	"bitbucket.org/airenas/devtasks/internal/pkg/persistence"
	"github.com/pkg/errors"
)

type flatItem struct {
	ID         string  `json:"id"`
	Difficulty float64 `json:"zorluk"`
	Time       float64 `json:"sure"`
}

type keyedItem struct {
	Level    float64 `json:"level"`
	Duration float64 `json:"estimated_duration"`
}

//Decode parses feed's body into tasks of the provider
func Decode(format Format, provider string, data []byte) ([]*persistence.Task, error) {
	switch format {
	case FormatFlat:
		return decodeFlat(provider, data)
	case FormatKeyed:
		return decodeKeyed(provider, data)
	}
	return nil, errors.Errorf("Unknown format '%s'", format)
}

func decodeFlat(provider string, data []byte) ([]*persistence.Task, error) {
	var items []flatItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrap(err, "Can't unmarshal")
	}
	res := make([]*persistence.Task, 0, len(items))
	for _, it := range items {
		if it.ID == "" {
			cmdapp.Log.Warnf("Skip task without name from %s", provider)
			continue
		}
		res = append(res, &persistence.Task{Provider: provider, Name: it.ID, Difficulty: it.Difficulty, Time: it.Time})
	}
	return res, nil
}

// object keys inside one item are taken in sorted order
func decodeKeyed(provider string, data []byte) ([]*persistence.Task, error) {
	var items []map[string]keyedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrap(err, "Can't unmarshal")
	}
	res := make([]*persistence.Task, 0, len(items))
	for _, it := range items {
		names := make([]string, 0, len(it))
		for k := range it {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, n := range names {
			if n == "" {
				cmdapp.Log.Warnf("Skip task without name from %s", provider)
				continue
			}
			v := it[n]
			res = append(res, &persistence.Task{Provider: provider, Name: n, Difficulty: v.Level, Time: v.Duration})
		}
	}
	return res, nil
}
