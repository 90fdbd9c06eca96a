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

// Package cli implements an interactive shell and a scripted demonstration
// on top of an int-keyed, string-valued B-tree.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/nikita20350/btree"
)

// DemoKeys is the insertion sequence used by Demo.
var DemoKeys = []int{10, 11, 15, 12, 6, 18, 13, 8, 14, 25, 30, 9, 5, 16, 35, 40, 27}

type Cli struct {
	scanner *bufio.Scanner
	tree    *btree.BTreeG[int, string]
	out     io.Writer

	// Prompt enables the help banner and the "> " prompt.
	Prompt bool
	// Width is the terminal width.  Trees whose one-line form is wider are
	// printed one node per line.  Zero means unknown.
	Width int

	good *color.Color
	bad  *color.Color
}

func NewCli(s *bufio.Scanner, t *btree.BTreeG[int, string], out io.Writer) *Cli {
	return &Cli{
		scanner: s,
		tree:    t,
		out:     out,
		good:    color.New(color.FgGreen),
		bad:     color.New(color.FgRed),
	}
}

// Start reads commands until EXIT or the end of input.
func (c *Cli) Start() {
	if c.Prompt {
		c.printHelp()
		c.printPrompt()
	}
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		if c.Prompt {
			c.printPrompt()
		}
	}
}

// Demo builds an order/minDegree tree from DemoKeys, then searches for,
// deletes and searches again for 14 and searches for 35, printing the tree
// after the build and after the delete.
func Demo(out io.Writer, order, minDegree int) error {
	tree, err := btree.NewOrderedG[int, string](order, minDegree)
	if err != nil {
		return err
	}
	defer tree.Destroy()
	c := NewCli(nil, tree, out)
	for _, k := range DemoKeys {
		if _, err := tree.Insert(k, ""); err != nil {
			return err
		}
	}
	c.printTree()
	c.search(14)
	tree.Delete(14)
	c.printTree()
	c.search(14)
	c.search(35)
	return tree.Check()
}

func (c *Cli) printHelp() {
	fmt.Fprintf(c.out, `
B-Tree CLI (order %d, minimum degree %d)

Available Commands:
  SET <key> <val> Insert or overwrite a key
  ADD <key> [val] Insert a key, leaving an existing one alone
  DEL <key>       Remove a key
  GET <key>       Retrieve the value for key
  HAS <key>       Report whether key is present
  PRINT           Show the tree
  CHECK           Verify the tree's invariants
  LEN             Show the number of keys and the height
  HELP            Show this message
  EXIT            Terminate this session

`, c.tree.Order(), c.tree.MinDegree())
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

// processInput runs one command line and reports whether to keep going.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		c.bad.Fprintf(c.out, "Unknown command \"%s\"\n", command)
	case "set":
		c.processSetCommand(fields[1:])
	case "add":
		c.processAddCommand(fields[1:])
	case "del":
		c.processDeleteCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "has":
		c.processHasCommand(fields[1:])
	case "print":
		c.printTree()
	case "check":
		if err := c.tree.Check(); err != nil {
			c.bad.Fprintf(c.out, "Check failed: %v\n", err)
		} else {
			c.good.Fprintln(c.out, "OK")
		}
	case "len":
		fmt.Fprintf(c.out, "%d keys, height %d\n", c.tree.Len(), c.tree.Height())
	case "help":
		c.printHelp()
	case "exit":
		return false
	}
	return true
}

func (c *Cli) parseKey(arg string) (int, bool) {
	key, err := strconv.Atoi(arg)
	if err != nil {
		c.bad.Fprintf(c.out, "Invalid key %q: keys are integers\n", arg)
		return 0, false
	}
	return key, true
}

func (c *Cli) processSetCommand(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "Usage: SET <key> <value>")
		return
	}
	key, ok := c.parseKey(args[0])
	if !ok {
		return
	}
	if _, _, err := c.tree.ReplaceOrInsert(key, args[1]); err != nil {
		c.bad.Fprintf(c.out, "Insert failed: %v\n", err)
		return
	}
	c.printTree()
}

func (c *Cli) processAddCommand(args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(c.out, "Usage: ADD <key> [value]")
		return
	}
	key, ok := c.parseKey(args[0])
	if !ok {
		return
	}
	var val string
	if len(args) == 2 {
		val = args[1]
	}
	inserted, err := c.tree.Insert(key, val)
	if err != nil {
		c.bad.Fprintf(c.out, "Insert failed: %v\n", err)
		return
	}
	if !inserted {
		fmt.Fprintf(c.out, "Key %d already present.\n", key)
		return
	}
	c.printTree()
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: DEL <key>")
		return
	}
	key, ok := c.parseKey(args[0])
	if !ok {
		return
	}
	if _, found := c.tree.Delete(key); !found {
		fmt.Fprintln(c.out, "Key not found.")
		return
	}
	c.printTree()
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: GET <key>")
		return
	}
	key, ok := c.parseKey(args[0])
	if !ok {
		return
	}
	val, found := c.tree.Get(key)
	if !found {
		fmt.Fprintln(c.out, "Key not found.")
		return
	}
	fmt.Fprintln(c.out, val)
}

func (c *Cli) processHasCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: HAS <key>")
		return
	}
	if key, ok := c.parseKey(args[0]); ok {
		c.search(key)
	}
}

func (c *Cli) search(key int) {
	if c.tree.Has(key) {
		c.good.Fprintf(c.out, "Found %d\n", key)
	} else {
		c.bad.Fprintf(c.out, "No key %d in the tree\n", key)
	}
}

func (c *Cli) printTree() {
	s := c.tree.String()
	if c.Width > 0 && len(s) > c.Width {
		c.tree.Print(c.out)
		return
	}
	fmt.Fprintln(c.out, s)
}
