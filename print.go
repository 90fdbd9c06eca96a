// Copyright 2014-2022 Google Inc.
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

package btree

import (
	"fmt"
	"io"
	"strings"
)

// print writes one line per node, indented by level.
func (n *node[K, V]) print(w io.Writer, level int) {
	fmt.Fprintf(w, "%sNODE:%v\n", strings.Repeat("  ", level), n.keys)
	for _, c := range n.children {
		c.print(w, level+1)
	}
}

// format writes the subtree in parenthesised form: each node is enclosed in
// "( )" with its children interleaved between its keys.
func (n *node[K, V]) format(sb *strings.Builder) {
	sb.WriteString("(")
	for i, k := range n.keys {
		if len(n.children) > 0 {
			sb.WriteByte(' ')
			n.children[i].format(sb)
		}
		fmt.Fprintf(sb, " %v", k)
	}
	if len(n.children) > 0 {
		sb.WriteByte(' ')
		n.children[len(n.children)-1].format(sb)
	}
	sb.WriteString(" )")
}

// Print writes the tree to w, one node per line, children indented below
// their parent.
func (t *BTreeG[K, V]) Print(w io.Writer) {
	if t.root == nil {
		fmt.Fprintln(w, "NODE:[]")
		return
	}
	t.root.print(w, 0)
}

// String returns the tree's keys in nested parenthesised form, for example
// "( ( 1 ) 2 ( 3 ) )".  The empty tree is "<>".
func (t *BTreeG[K, V]) String() string {
	if t.root == nil {
		return "<>"
	}
	var sb strings.Builder
	t.root.format(&sb)
	return sb.String()
}
