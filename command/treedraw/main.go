// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/ordertree/avl"
	"github.com/bitmark-inc/ordertree/bst"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "unbalanced", HasArg: getoptions.NO_ARGUMENT, Short: 'u'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--unbalanced] [--watch] [--file=FILE] [key…]", program)
	}

	verbose := len(options["verbose"]) > 0
	unbalanced := len(options["unbalanced"]) > 0
	watch := len(options["watch"]) > 0

	file := ""
	if len(options["file"]) > 0 {
		file = options["file"][0]
	}

	if "" == file && 0 == len(arguments) {
		exitwithstatus.Message("usage: %s [--file=FILE] [key…]", program)
	}
	if watch && "" == file {
		exitwithstatus.Message("%s: watch mode requires --file", program)
	}

	logging := logger.Configuration{
		Directory: os.TempDir(),
		File:      "treedraw.log",
		Size:      1048576,
		Count:     10,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("treedraw")

	draw(log, program, file, arguments, unbalanced, verbose, false)

	if !watch {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		exitwithstatus.Message("%s: watcher setup failed with error: %s", program, err)
	}
	defer watcher.Close()

	if err = watcher.Add(file); nil != err {
		exitwithstatus.Message("%s: cannot watch: %q error: %s", program, file, err)
	}
	log.Infof("watching: %q", file)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if 0 != event.Op&(fsnotify.Write|fsnotify.Create) {
				log.Infof("input changed: %s", event)
				draw(log, program, file, arguments, unbalanced, verbose, true)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Errorf("watch error: %s", err)
		}
	}
}

// read the current key set and display the tree it builds
//
// a read failure is fatal on the first draw, but while watching the
// file may be mid-rewrite, so only log and wait for the next event
func draw(log *logger.L, program string, file string, arguments []string, unbalanced bool, verbose bool, watching bool) {

	tokens := arguments
	if "" != file {
		data, err := ioutil.ReadFile(file)
		if nil != err {
			log.Errorf("read: %q error: %s", file, err)
			if watching {
				return
			}
			exitwithstatus.Message("%s: read: %q failed with error: %s", program, file, err)
		}
		tokens = strings.Fields(string(data))
	}

	log.Infof("building from %d keys", len(tokens))

	numeric := numericTokens(tokens)

	if unbalanced {
		keys := make([]bst.Item, len(tokens))
		for i, token := range tokens {
			keys[i] = makeItem(token, numeric)
		}
		tree := bst.Build(keys)
		depth := tree.Print(verbose)
		fmt.Printf("keys: %d  depth: %d\n", tree.Count(), depth)
		if !tree.IsEmpty() {
			fmt.Printf("minimum: %v  maximum: %v\n", tree.First().Key(), tree.Last().Key())
		}
		return
	}

	keys := make([]avl.Item, len(tokens))
	for i, token := range tokens {
		keys[i] = makeItem(token, numeric)
	}
	tree := avl.Build(keys)
	tree.Print(verbose)
	fmt.Printf("keys: %d  height: %d\n", tree.Count(), tree.Height())
	if !tree.IsEmpty() {
		fmt.Printf("minimum: %v  maximum: %v\n", tree.First().Key(), tree.Last().Key())
	}
}

// a key type for each kind of input token
//
// both types satisfy the Compare interface of the avl and bst
// packages, so one token list can feed either tree

type intItem int64

func (n intItem) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (n intItem) Compare(x interface{}) int {
	m := x.(intItem)
	switch {
	case n < m:
		return -1
	case n > m:
		return +1
	default:
		return 0
	}
}

type stringItem string

func (s stringItem) String() string {
	return string(s)
}

func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(stringItem)))
}

// a tree must hold keys of one kind only, so the input orders
// numerically when every token parses as an integer and lexically
// otherwise
func numericTokens(tokens []string) bool {
	for _, token := range tokens {
		if _, err := strconv.ParseInt(token, 10, 64); nil != err {
			return false
		}
	}
	return true
}

func makeItem(token string, numeric bool) interface {
	Compare(interface{}) int
} {
	if numeric {
		n, _ := strconv.ParseInt(token, 10, 64)
		return intItem(n)
	}
	return stringItem(token)
}
