// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ordertree/avl"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "treesort"
	app.Usage = "sort unique lines by folding them through a balanced tree"
	app.ArgsUsage = "[FILE…]"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "numeric, n",
			Usage: " compare lines as integers",
		},
		cli.BoolFlag{
			Name:  "reverse, r",
			Usage: " output in descending order",
		},
	}
	app.Action = runSort

	if err := app.Run(os.Args); nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// fold every input line into one tree version chain, then walk the
// final version in order
func runSort(c *cli.Context) error {

	tree := avl.New()
	numeric := c.Bool("numeric")

	add := func(r io.Reader) error {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := scanner.Text()
			if "" == line {
				continue
			}
			if numeric {
				n, err := strconv.ParseInt(line, 10, 64)
				if nil != err {
					return fmt.Errorf("not a number: %q", line)
				}
				tree = tree.Insert(intItem(n))
			} else {
				tree = tree.Insert(stringItem(line))
			}
		}
		return scanner.Err()
	}

	if 0 == c.NArg() {
		if err := add(os.Stdin); nil != err {
			return err
		}
	} else {
		for _, name := range c.Args() {
			f, err := os.Open(name)
			if nil != err {
				return err
			}
			err = add(f)
			f.Close()
			if nil != err {
				return err
			}
		}
	}

	if c.Bool("reverse") {
		for i := tree.Count() - 1; i >= 0; i -= 1 {
			fmt.Fprintln(c.App.Writer, tree.Get(i).Key())
		}
		return nil
	}

	for it := tree.Iterate(); ; {
		p := it.Next()
		if nil == p {
			return nil
		}
		fmt.Fprintln(c.App.Writer, p.Key())
	}
}

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
