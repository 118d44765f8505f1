package main

import (
	"io/ioutil"
	"log"
	"path/filepath"
	"testing"

	"github.com/daaku/ensure"
)

func testApp() *app {
	return &app{
		log: log.New(ioutil.Discard, "", 0),
	}
}

func TestReplayAccepted(t *testing.T) {
	filenames, err := filepath.Glob("testdata/accept/*.xml")
	ensure.Nil(t, err)
	ensure.True(t, len(filenames) > 0)
	for _, filename := range filenames {
		filename := filename
		t.Run(filename, func(t *testing.T) {
			a := testApp()
			ensure.Nil(t, a.replayFile(filename))
			ensure.DeepEqual(t, a.accepted, 1)
			ensure.DeepEqual(t, a.rejected, 0)
		})
	}
}

func TestReplayRejected(t *testing.T) {
	filenames, err := filepath.Glob("testdata/reject/*.xml")
	ensure.Nil(t, err)
	ensure.True(t, len(filenames) > 0)
	for _, filename := range filenames {
		filename := filename
		t.Run(filename, func(t *testing.T) {
			a := testApp()
			ensure.Nil(t, a.replayFile(filename))
			ensure.DeepEqual(t, a.accepted, 0)
			ensure.DeepEqual(t, a.rejected, 1)
		})
	}
}

func TestRun(t *testing.T) {
	a := testApp()
	a.Globs = []string{"testdata/accept/*.xml", "testdata/reject/*.xml"}
	a.Lex = true
	ensure.Nil(t, a.run())
	ensure.True(t, a.accepted > 0)
	ensure.True(t, a.rejected > 0)
	ensure.True(t, len(a.lexInfo.Names()) > 0)
}

func TestReplayMissingFile(t *testing.T) {
	a := testApp()
	ensure.NotNil(t, a.replayFile("testdata/no-such-file.xml"))
}
