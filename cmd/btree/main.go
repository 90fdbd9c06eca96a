// Copyright 2014 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// btree is an interactive shell over an in-memory B-tree of int keys and
// string values.
//
// Usage:
//
//	btree [-order 5] [-t 3] [-limit n]   # read commands from stdin
//	btree -demo                          # run the scripted demonstration
//
// The prompt and help banner are shown only when stdin is a terminal, so
// command files can be piped in.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/nikita20350/btree"
	"github.com/nikita20350/btree/internal/cli"
	"golang.org/x/term"
)

func main() {
	order := flag.Int("order", 5, "maximum children per node")
	minDegree := flag.Int("t", 3, "minimum degree (non-root nodes hold at least t-1 keys)")
	limit := flag.Int("limit", 0, "maximum number of nodes (0 = unlimited)")
	demo := flag.Bool("demo", false, "run the scripted demonstration and exit")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	if *demo {
		if err := cli.Demo(os.Stdout, *order, *minDegree); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	tree, err := btree.NewOrderedG[int, string](*order, *minDegree)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer tree.Destroy()
	tree.SetNodeLimit(*limit)

	shell := cli.NewCli(bufio.NewScanner(os.Stdin), tree, os.Stdout)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		shell.Prompt = true
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			shell.Width = width
		}
	}
	shell.Start()
}
