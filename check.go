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

import "github.com/cockroachdb/errors"

type optionalItem[T any] struct {
	item  T
	valid bool
}

func optional[T any](item T) optionalItem[T] {
	return optionalItem[T]{item: item, valid: true}
}
func empty[T any]() optionalItem[T] {
	return optionalItem[T]{}
}

// Check verifies the structural invariants of the tree: keys strictly
// increasing and bounded by their parent's separators, one value per key,
// len(keys)+1 children per internal node, every non-root node holding
// between t-1 and m-1 keys, no empty root, all leaves at the same depth and
// Len matching the number of keys.  It returns an assertion failure
// describing the first violation found.
func (t *BTreeG[K, V]) Check() error {
	if t.root == nil {
		if t.length != 0 {
			return errors.AssertionFailedf("empty tree reports %d keys", t.length)
		}
		return nil
	}
	if len(t.root.keys) == 0 {
		return errors.AssertionFailedf("root has no keys")
	}
	c := checker[K, V]{t: t, leafDepth: -1}
	if err := c.walk(t.root, 0, empty[K](), empty[K]()); err != nil {
		return err
	}
	if c.keys != t.length {
		return errors.AssertionFailedf("found %d keys, tree reports %d", c.keys, t.length)
	}
	if c.nodes != t.nodes {
		return errors.AssertionFailedf("found %d nodes, tree reports %d", c.nodes, t.nodes)
	}
	return nil
}

type checker[K any, V any] struct {
	t         *BTreeG[K, V]
	leafDepth int
	keys      int
	nodes     int
}

// walk checks the subtree at n, whose keys must lie strictly between lower
// and upper where those are set.
func (c *checker[K, V]) walk(n *node[K, V], depth int, lower, upper optionalItem[K]) error {
	less := c.t.less
	c.nodes++
	c.keys += len(n.keys)
	if len(n.vals) != len(n.keys) {
		return errors.AssertionFailedf("depth %d: %d keys but %d values", depth, len(n.keys), len(n.vals))
	}
	if len(n.keys) > c.t.maxKeys() {
		return errors.AssertionFailedf("depth %d: %d keys exceeds maximum %d", depth, len(n.keys), c.t.maxKeys())
	}
	if depth > 0 && len(n.keys) < c.t.minKeys() {
		return errors.AssertionFailedf("depth %d: %d keys below minimum %d", depth, len(n.keys), c.t.minKeys())
	}
	if n.t != c.t {
		return errors.AssertionFailedf("depth %d: node owned by another tree", depth)
	}
	for i, k := range n.keys {
		if i > 0 && !less(n.keys[i-1], k) {
			return errors.AssertionFailedf("depth %d: keys %v and %v out of order", depth, n.keys[i-1], k)
		}
		if lower.valid && !less(lower.item, k) {
			return errors.AssertionFailedf("depth %d: key %v not above separator %v", depth, k, lower.item)
		}
		if upper.valid && !less(k, upper.item) {
			return errors.AssertionFailedf("depth %d: key %v not below separator %v", depth, k, upper.item)
		}
	}
	if n.leaf() {
		if c.leafDepth < 0 {
			c.leafDepth = depth
		} else if c.leafDepth != depth {
			return errors.AssertionFailedf("leaf at depth %d, expected %d", depth, c.leafDepth)
		}
		return nil
	}
	if len(n.children) != len(n.keys)+1 {
		return errors.AssertionFailedf("depth %d: %d keys but %d children", depth, len(n.keys), len(n.children))
	}
	for i, child := range n.children {
		lo, hi := lower, upper
		if i > 0 {
			lo = optional(n.keys[i-1])
		}
		if i < len(n.keys) {
			hi = optional(n.keys[i])
		}
		if err := c.walk(child, depth+1, lo, hi); err != nil {
			return err
		}
	}
	return nil
}
