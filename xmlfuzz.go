package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/daaku/xmlfuzz/internal/xmldoc"
	"github.com/daaku/xmlfuzz/internal/xmllex"
	"github.com/jpillora/opts"
	"github.com/pkg/errors"
)

type app struct {
	Globs []string `opts:"name=xml,short=x,help=Globs targeting XML files to replay"`
	Lex   bool     `opts:"short=l,help=Also run the lexer pass and report element usage"`

	accepted int
	rejected int
	lexInfo  xmllex.Info

	log *log.Logger
}

func (a *app) startGlobJobs(glob string, processor func(string) error) error {
	matches, err := filepath.Glob(glob)
	if err != nil {
		return errors.WithStack(err)
	}
	for _, match := range matches {
		if err := processor(match); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) replayFile(filename string) error {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.WithStack(err)
	}
	a.replay(filename, data)
	return nil
}

// replay feeds data through the same code paths the fuzz harnesses exercise.
// Parse rejection is a reported outcome, not an error.
func (a *app) replay(name string, data []byte) {
	if err := xmldoc.Parse(data); err != nil {
		a.rejected++
		a.log.Printf("Rejected %s: %v\n", name, err)
	} else {
		a.accepted++
		a.log.Printf("Accepted %s\n", name)
	}

	if !a.Lex {
		return
	}
	info, err := xmllex.Extract(bytes.NewReader(data))
	if err != nil {
		a.log.Printf("Lexer stopped in %s: %v\n", name, err)
		return
	}
	a.lexInfo.Merge(info)
}

func (a *app) run() error {
	for _, glob := range a.Globs {
		if err := a.startGlobJobs(glob, a.replayFile); err != nil {
			return err
		}
	}
	a.log.Printf("Accepted %d, rejected %d\n", a.accepted, a.rejected)
	if a.Lex {
		names := a.lexInfo.Names()
		sort.Strings(names)
		a.log.Printf("Elements seen: %s\n", strings.Join(names, " "))
	}
	return nil
}

func main() {
	a := &app{
		log: log.New(os.Stderr, ">> ", 0),
	}
	opts.Parse(a)
	if err := a.run(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
