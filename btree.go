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

package btree

import (
	"io"
	"iter"
)

// BTree is a B-Tree of int keys without values, a specific instantiation
// of BTreeG.
type BTree struct {
	g *BTreeG[int, struct{}]
}

// New creates a new int key B-Tree with the given order and minimum degree.
//
// New(5, 3), for example, will create a tree whose internal nodes have 3-5
// children and whose non-root nodes hold 2-4 keys.
func New(order, minDegree int) (*BTree, error) {
	g, err := NewOrderedG[int, struct{}](order, minDegree)
	if err != nil {
		return nil, err
	}
	return &BTree{g: g}, nil
}

// Insert adds key to the tree.  It returns false if the key was already
// there, and ErrAllocateFailed if the node limit would be exceeded.
func (t *BTree) Insert(key int) (bool, error) {
	return t.g.Insert(key, struct{}{})
}

// Delete removes key from the tree, returning whether it was there.
func (t *BTree) Delete(key int) bool {
	_, ok := t.g.Delete(key)
	return ok
}

// Search returns true if key is in the tree.
func (t *BTree) Search(key int) bool {
	return t.g.Has(key)
}

// Min returns the smallest key in the tree.
func (t *BTree) Min() (int, bool) {
	k, _, ok := t.g.Min()
	return k, ok
}

// Max returns the largest key in the tree.
func (t *BTree) Max() (int, bool) {
	k, _, ok := t.g.Max()
	return k, ok
}

// Keys returns an iterator over the keys in ascending order.
func (t *BTree) Keys() iter.Seq[int] {
	return t.g.Keys()
}

// SetNodeLimit caps the number of nodes; see BTreeG.SetNodeLimit.
func (t *BTree) SetNodeLimit(limit int) {
	t.g.SetNodeLimit(limit)
}

// Len returns the number of keys currently in the tree.
func (t *BTree) Len() int {
	return t.g.Len()
}

// Height returns the number of levels in the tree.
func (t *BTree) Height() int {
	return t.g.Height()
}

// Check verifies the tree's structural invariants.
func (t *BTree) Check() error {
	return t.g.Check()
}

// Print writes the tree to w, one node per line.
func (t *BTree) Print(w io.Writer) {
	t.g.Print(w)
}

func (t *BTree) String() string {
	return t.g.String()
}

// Destroy releases all nodes; the tree is empty afterwards.
func (t *BTree) Destroy() {
	t.g.Destroy()
}
