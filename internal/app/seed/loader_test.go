package seed

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	"bitbucket.org/airenas/devtasks/internal/pkg/persistence"
	"bitbucket.org/airenas/devtasks/internal/pkg/test/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTempFile(t *testing.T) *os.File {
	f, err := ioutil.TempFile("", "test")
	assert.Nil(t, err)
	return f
}

func Test_Unmarshal(t *testing.T) {
	r, err := loadYaml([]byte("developers:\n  - name: olia\n    period: 2\n    difficulty: 3\n"))
	assert.Nil(t, err)
	assert.Equal(t, []*persistence.Developer{{Name: "olia", Period: 2, Difficulty: 3}}, r)
}

func Test_Unmarshal_Fails(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "Empty", data: ""},
		{name: "Wrong yaml", data: "developers:olia\n"},
		{name: "Unknown field", data: "developers:\n  - name: olia\n    period: 2\n    difficulty: 3\n    skill: 6\n"},
		{name: "No name", data: "developers:\n  - period: 2\n    difficulty: 3\n"},
		{name: "Zero period", data: "developers:\n  - name: olia\n    difficulty: 3\n"},
		{name: "Negative difficulty", data: "developers:\n  - name: olia\n    period: 1\n    difficulty: -3\n"},
		{name: "Duplicate", data: "developers:\n  - name: olia\n    period: 1\n    difficulty: 1\n" +
			"  - name: olia\n    period: 1\n    difficulty: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := loadYaml([]byte(tt.data))
			assert.NotNil(t, err)
			assert.Nil(t, r)
		})
	}
}

func Test_LoadFromFile(t *testing.T) {
	f := createTempFile(t)
	defer os.Remove(f.Name())
	fmt.Fprint(f, "developers:\n  - name: olia\n    period: 1\n    difficulty: 1\n")
	r, err := loadFile(f.Name())
	assert.Nil(t, err)
	assert.Equal(t, 1, len(r))
}

func Test_LoadFromFile_Fails(t *testing.T) {
	r, err := loadFile("some non existing file")
	assert.NotNil(t, err)
	assert.Nil(t, r)
}

func Test_DefaultDevelopers(t *testing.T) {
	r := defaultDevelopers()
	if assert.Equal(t, 5, len(r)) {
		for i, d := range r {
			assert.Equal(t, fmt.Sprintf("DEV %d", i+1), d.Name)
			assert.Equal(t, 1.0, d.Period)
			assert.Equal(t, float64(i+1), d.Difficulty)
		}
	}
}

func Test_Seed_Default(t *testing.T) {
	saver := &mocks.DeveloperSaver{}
	saver.On("SaveAll", mock.Anything).Return(5, nil)

	n, err := seed(saver, "")

	assert.Nil(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, defaultDevelopers(), saver.Calls[0].Arguments.Get(0))
}

func Test_Seed_Fails(t *testing.T) {
	saver := &mocks.DeveloperSaver{}
	saver.On("SaveAll", mock.Anything).Return(0, errors.New("olia"))

	_, err := seed(saver, "")
	assert.NotNil(t, err)

	_, err = seed(saver, "some non existing file")
	assert.NotNil(t, err)
	saver.AssertNumberOfCalls(t, "SaveAll", 1)
}
