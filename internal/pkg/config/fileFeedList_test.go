package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"bitbucket.org/airenas/devtasks/internal/pkg/feed"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

const testFeeds = `feeds:
  - name: one
    url: http://olia/one
    format: flat
  - name: two
    url: http://olia/two
    format: keyed
`

func createTempFile(t *testing.T) *os.File {
	f, err := ioutil.TempFile("", "test*.yml")
	assert.Nil(t, err)
	return f
}

func Test_Load(t *testing.T) {
	f := createTempFile(t)
	defer os.Remove(f.Name())
	fmt.Fprint(f, testFeeds)
	fl, err := NewFileFeedList(f.Name())
	assert.Nil(t, err)
	assert.Equal(t, []*feed.Feed{{Name: "one", URL: "http://olia/one", Format: feed.FormatFlat},
		{Name: "two", URL: "http://olia/two", Format: feed.FormatKeyed}}, fl.All())
}

func Test_ChecksPathOnInit(t *testing.T) {
	_, err := NewFileFeedList("")
	assert.NotNil(t, err)
}

func Test_LoadFromFile_Fails(t *testing.T) {
	_, err := NewFileFeedList("some non existing file.yml")
	assert.NotNil(t, err)
}

func Test_All_ReturnsCopy(t *testing.T) {
	f := createTempFile(t)
	defer os.Remove(f.Name())
	fmt.Fprint(f, testFeeds)
	fl, err := NewFileFeedList(f.Name())
	assert.Nil(t, err)
	r := fl.All()
	r[0] = nil
	assert.NotNil(t, fl.All()[0])
}

func Test_Parse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    int
		wantErr bool
	}{
		{name: "OK", data: testFeeds, want: 2},
		{name: "Empty", data: "", want: 0},
		{name: "No name", data: "feeds:\n  - url: http://olia\n    format: flat\n", wantErr: true},
		{name: "Wrong format", data: "feeds:\n  - name: one\n    url: http://olia\n    format: xml\n", wantErr: true},
		{name: "Duplicate", data: "feeds:\n  - name: one\n    url: http://olia\n    format: flat\n" +
			"  - name: one\n    url: http://olia\n    format: flat\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.SetConfigType("yml")
			assert.Nil(t, v.ReadConfig(strings.NewReader(tt.data)))
			got, err := parseFeeds(v)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, len(got))
		})
	}
}
