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

// Package btree implements in-memory B-Trees of fixed, tunable fanout.
//
// A tree is shaped by two parameters fixed at construction: the order m,
// which is the maximum number of children of an internal node (so a node
// holds at most m-1 keys), and the minimum degree t, which bounds every
// node except the root from below at t-1 keys.  Any 2 <= t <= ceil(m/2) is
// accepted; NewOrderedG[int, string](5, 3), for example, builds a tree whose
// non-root nodes hold 2 to 4 keys.
//
// Unlike the classic top-down variants, nodes here are never split or grown
// ahead of time.  Insertion descends to a leaf and, should a node overflow,
// splits it on the way back up, handing the promoted key to the parent.
// Deletion removes the key in place (substituting the inorder predecessor
// for keys of internal nodes) and, when a node drops below t-1 keys, repairs
// it with a second descent from the root guided by a locator key, borrowing
// from a sibling or merging with one.  Nodes carry no parent pointers.
//
// Each key may carry an associated value of type V that the tree never
// inspects.  BTree is the key-only int specialisation of BTreeG.
//
// Trees are not safe for concurrent use; callers sharing a tree between
// goroutines must serialise writes and must not read during a write.
package btree

import (
	"iter"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
)

const (
	DefaultFreeListSize = 32
)

var (
	// ErrInvalidConfig is returned by the constructors when the order and
	// minimum degree violate 2 <= minDegree <= ceil(order/2).
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrAllocateFailed is returned by insertions that would need more nodes
	// than the tree's node limit allows.  The tree is left untouched.
	ErrAllocateFailed = errors.New("btree: allocate failed")
)

// FreeListG represents a free list of btree nodes. By default each
// BTreeG has its own FreeListG, but multiple trees can share the same
// FreeListG.  Nodes freed by merges, root collapses and Destroy land here
// and are handed out again by later splits.
type FreeListG[K any, V any] struct {
	mu       sync.Mutex
	freelist []*node[K, V]
}

// NewFreeListG creates a new free list.
// size is the maximum size of the returned free list.
func NewFreeListG[K any, V any](size int) *FreeListG[K, V] {
	return &FreeListG[K, V]{freelist: make([]*node[K, V], 0, size)}
}

func (f *FreeListG[K, V]) newNode() (n *node[K, V]) {
	f.mu.Lock()
	index := len(f.freelist) - 1
	if index < 0 {
		f.mu.Unlock()
		return new(node[K, V])
	}
	n = f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	f.mu.Unlock()
	return
}

func (f *FreeListG[K, V]) freeNode(n *node[K, V]) (out bool) {
	f.mu.Lock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		out = true
	}
	f.mu.Unlock()
	return
}

// Len returns the number of nodes currently waiting for reuse.
func (f *FreeListG[K, V]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.freelist)
}

// ItemIteratorG allows callers of Ascend to iterate in-order over the tree.
// When this function returns false, iteration will stop and Ascend will
// immediately return.
type ItemIteratorG[K any, V any] func(key K, val V) bool

// Ordered represents the set of types for which the '<' operator work.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64 | ~string
}

// Less[T] returns a default LessFunc that uses the '<' operator for types that support it.
func Less[T Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

// NewOrderedG creates a new B-Tree for ordered key types.
func NewOrderedG[K Ordered, V any](order, minDegree int) (*BTreeG[K, V], error) {
	return NewG[K, V](order, minDegree, Less[K]())
}

// NewG creates a new B-Tree with the given order and minimum degree.
//
// NewG(4, 2), for example, will create a 2-3-4 tree (each node contains 1-3
// keys and 2-4 children).
//
// The passed-in LessFunc determines how keys of type K are ordered.
func NewG[K any, V any](order, minDegree int, less LessFunc[K]) (*BTreeG[K, V], error) {
	return NewWithFreeListG(order, minDegree, less, NewFreeListG[K, V](DefaultFreeListSize))
}

// NewWithFreeListG creates a new B-Tree that uses the given node free list.
func NewWithFreeListG[K any, V any](order, minDegree int, less LessFunc[K], f *FreeListG[K, V]) (*BTreeG[K, V], error) {
	if minDegree < 2 || minDegree > (order+1)/2 {
		return nil, errors.Wrapf(ErrInvalidConfig,
			"order %d, minimum degree %d: need 2 <= minimum degree <= ceil(order/2)", order, minDegree)
	}
	if less == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "nil less function")
	}
	if f == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "nil free list")
	}
	return &BTreeG[K, V]{
		order:     order,
		minDegree: minDegree,
		freelist:  f,
		less:      less,
	}, nil
}

// items stores keys, values or children in a node.
type items[T any] []T

// insertAt inserts a value into the given index, pushing all subsequent values
// forward.
func (s *items[T]) insertAt(index int, item T) {
	var zero T
	*s = append(*s, zero)
	if index < len(*s) {
		copy((*s)[index+1:], (*s)[index:])
	}
	(*s)[index] = item
}

// removeAt removes a value at a given index, pulling all subsequent values
// back.
func (s *items[T]) removeAt(index int) T {
	item := (*s)[index]
	copy((*s)[index:], (*s)[index+1:])
	var zero T
	(*s)[len(*s)-1] = zero
	*s = (*s)[:len(*s)-1]
	return item
}

// pop removes and returns the last element in the list.
func (s *items[T]) pop() (out T) {
	index := len(*s) - 1
	out = (*s)[index]
	var zero T
	(*s)[index] = zero
	*s = (*s)[:index]
	return
}

// truncate truncates this instance at index so that it contains only the
// first index items. index must be less than or equal to length.
func (s *items[T]) truncate(index int) {
	var toClear items[T]
	*s, toClear = (*s)[:index], (*s)[index:]
	var zero T
	for i := 0; i < len(toClear); i++ {
		toClear[i] = zero
	}
}

// find returns the index of key in this list if found is true.  Otherwise
// index is the position of the first larger key, which is both where key
// would be inserted and the child to descend into.
func (s items[T]) find(key T, less func(T, T) bool) (index int, found bool) {
	i := sort.Search(len(s), func(i int) bool {
		return less(key, s[i])
	})
	if i > 0 && !less(s[i-1], key) {
		return i - 1, true
	}
	return i, false
}

// node is an internal node in a tree.
//
// It must at all times maintain the invariant that len(vals) == len(keys)
// and either
//   - len(children) == 0 (a leaf), or
//   - len(children) == len(keys) + 1
type node[K any, V any] struct {
	keys     items[K]
	vals     items[V]
	children items[*node[K, V]]
	t        *BTreeG[K, V]
}

func (n *node[K, V]) leaf() bool {
	return len(n.children) == 0
}

// outcome reports what an insert did to the subtree it was applied to.
type outcome int

const (
	absorbed   outcome = iota // key placed, node sizes still within bounds
	present                   // key already in the subtree
	overflowed                // subtree root split, see insertion.key and insertion.right
)

// insertion is the result an insert hands back to its caller.  When the
// outcome is overflowed, key/val is the separator promoted out of the split
// node and right is the new sibling that belongs to its right.  When it is
// present, old holds the value that was stored under the key.
type insertion[K any, V any] struct {
	outcome outcome
	key     K
	val     V
	right   *node[K, V]
	old     V
}

// insert inserts key into the subtree rooted at this node.  If the key is
// already there its value is overwritten only when replace is set.
func (n *node[K, V]) insert(key K, val V, replace bool) insertion[K, V] {
	i, found := n.keys.find(key, n.t.less)
	if found {
		res := insertion[K, V]{outcome: present, old: n.vals[i]}
		if replace {
			n.keys[i] = key
			n.vals[i] = val
		}
		return res
	}
	if n.leaf() {
		return n.place(i, key, val, nil)
	}
	res := n.children[i].insert(key, val, replace)
	if res.outcome != overflowed {
		return res
	}
	// children[i] stays as the left half; the new right half follows it.
	return n.place(i, res.key, res.val, res.right)
}

// place puts key/val at index i and, for internal nodes, right at child
// index i+1.  A node that is already full is split instead.
func (n *node[K, V]) place(i int, key K, val V, right *node[K, V]) insertion[K, V] {
	if len(n.keys) < n.t.maxKeys() {
		n.keys.insertAt(i, key)
		n.vals.insertAt(i, val)
		if right != nil {
			n.children.insertAt(i+1, right)
		}
		return insertion[K, V]{outcome: absorbed}
	}
	up, upVal, next := n.split(i, key, val, right)
	return insertion[K, V]{outcome: overflowed, key: up, val: upVal, right: next}
}

// split splits this full node around an incoming key that belongs at index
// pos, with child (internal nodes only) to its right.  Counting the incoming
// key there are m keys; the one that lands at index t-1 is returned along
// with a new node holding everything after it.  This node keeps the t-1
// keys (and t children) before it; the new node gets m-t keys (and m-t+1
// children).
func (n *node[K, V]) split(pos int, key K, val V, child *node[K, V]) (K, V, *node[K, V]) {
	mid := n.t.minDegree - 1
	next := n.t.newNode()
	var up K
	var upVal V
	switch {
	case pos < mid:
		// The incoming key goes left, which pushes the old key at mid-1
		// onto the midpoint.
		up, upVal = n.keys[mid-1], n.vals[mid-1]
		next.keys = append(next.keys, n.keys[mid:]...)
		next.vals = append(next.vals, n.vals[mid:]...)
		n.keys.truncate(mid - 1)
		n.vals.truncate(mid - 1)
		n.keys.insertAt(pos, key)
		n.vals.insertAt(pos, val)
		if !n.leaf() {
			next.children = append(next.children, n.children[mid:]...)
			n.children.truncate(mid)
			n.children.insertAt(pos+1, child)
		}
	case pos == mid:
		// The incoming key is itself the midpoint.
		up, upVal = key, val
		next.keys = append(next.keys, n.keys[mid:]...)
		next.vals = append(next.vals, n.vals[mid:]...)
		n.keys.truncate(mid)
		n.vals.truncate(mid)
		if !n.leaf() {
			next.children = append(next.children, child)
			next.children = append(next.children, n.children[mid+1:]...)
			n.children.truncate(mid + 1)
		}
	default:
		// The incoming key goes right and the old key at mid is promoted.
		up, upVal = n.keys[mid], n.vals[mid]
		next.keys = append(next.keys, n.keys[mid+1:]...)
		next.vals = append(next.vals, n.vals[mid+1:]...)
		n.keys.truncate(mid)
		n.vals.truncate(mid)
		next.keys.insertAt(pos-mid-1, key)
		next.vals.insertAt(pos-mid-1, val)
		if !n.leaf() {
			next.children = append(next.children, n.children[mid+1:]...)
			n.children.truncate(mid + 1)
			next.children.insertAt(pos-mid, child)
		}
	}
	return up, upVal, next
}

// get finds the given key in the subtree and returns its value.
func (n *node[K, V]) get(key K) (_ V, _ bool) {
	i, found := n.keys.find(key, n.t.less)
	if found {
		return n.vals[i], true
	} else if len(n.children) > 0 {
		return n.children[i].get(key)
	}
	return
}

// leftmost returns the first key in the subtree.
func leftmost[K any, V any](n *node[K, V]) (_ K, _ V, found bool) {
	if n == nil {
		return
	}
	for len(n.children) > 0 {
		n = n.children[0]
	}
	if len(n.keys) == 0 {
		return
	}
	return n.keys[0], n.vals[0], true
}

// rightmost returns the last key in the subtree.
func rightmost[K any, V any](n *node[K, V]) (_ K, _ V, found bool) {
	if n == nil {
		return
	}
	for len(n.children) > 0 {
		n = n.children[len(n.children)-1]
	}
	if len(n.keys) == 0 {
		return
	}
	return n.keys[len(n.keys)-1], n.vals[len(n.vals)-1], true
}

// remove removes key from the subtree rooted at this node.
//
// A key found in a leaf is removed directly.  A key found in an internal
// node is overwritten by its inorder predecessor, the last key of the
// rightmost leaf under children[i], which is dropped from that leaf.  Either
// way only a single leaf loses a key, and if that leaf falls below the
// minimum the tree is repaired from the root.
func (n *node[K, V]) remove(key K) (_ V, _ bool) {
	i, found := n.keys.find(key, n.t.less)
	if !found {
		if n.leaf() {
			return
		}
		return n.children[i].remove(key)
	}
	out := n.vals[i]
	if n.leaf() {
		n.keys.removeAt(i)
		n.vals.removeAt(i)
		if len(n.keys) < n.t.minKeys() {
			// key still routes here if the leaf is now empty.
			locator := key
			if len(n.keys) > 0 {
				locator = n.keys[0]
			}
			n.t.root.rebalance(locator)
		}
		return out, true
	}
	pred := n.children[i]
	for !pred.leaf() {
		pred = pred.children[len(pred.children)-1]
	}
	n.keys[i] = pred.keys.pop()
	n.vals[i] = pred.vals.pop()
	if len(pred.keys) < n.t.minKeys() {
		// An exact match on n.keys[i] descends into children[i] and then
		// rightmost, which is where pred lives.
		locator := n.keys[i]
		if len(pred.keys) > 0 {
			locator = pred.keys[0]
		}
		n.t.root.rebalance(locator)
	}
	return out, true
}

// rebalance walks from this node towards the leaf that locator routes to
// and, on the way back up, repairs every child on that path holding fewer
// than t-1 keys.  Repairing a child can only shrink this node by one key,
// which this node's own parent checks next.
func (n *node[K, V]) rebalance(locator K) {
	if n.leaf() {
		return
	}
	i, _ := n.keys.find(locator, n.t.less)
	n.children[i].rebalance(locator)
	minKeys := n.t.minKeys()
	if len(n.children[i].keys) >= minKeys {
		return
	}
	switch {
	case i < len(n.keys) && len(n.children[i+1].keys) > minKeys:
		n.borrowFromRight(i)
	case i > 0 && len(n.children[i-1].keys) > minKeys:
		n.borrowFromLeft(i)
	default:
		if i == len(n.keys) {
			i--
		}
		n.merge(i)
	}
}

// borrowFromRight rotates the separator at i down to the end of children[i]
// and the first key of children[i+1] up to replace it.
func (n *node[K, V]) borrowFromRight(i int) {
	child, sibling := n.children[i], n.children[i+1]
	child.keys = append(child.keys, n.keys[i])
	child.vals = append(child.vals, n.vals[i])
	n.keys[i] = sibling.keys.removeAt(0)
	n.vals[i] = sibling.vals.removeAt(0)
	if !sibling.leaf() {
		child.children = append(child.children, sibling.children.removeAt(0))
	}
}

// borrowFromLeft rotates the separator at i-1 down to the front of
// children[i] and the last key of children[i-1] up to replace it.
func (n *node[K, V]) borrowFromLeft(i int) {
	child, sibling := n.children[i], n.children[i-1]
	child.keys.insertAt(0, n.keys[i-1])
	child.vals.insertAt(0, n.vals[i-1])
	n.keys[i-1] = sibling.keys.pop()
	n.vals[i-1] = sibling.vals.pop()
	if !sibling.leaf() {
		child.children.insertAt(0, sibling.children.pop())
	}
}

// merge folds the separator at i and all of children[i+1] into children[i]
// and frees children[i+1].
func (n *node[K, V]) merge(i int) {
	left, right := n.children[i], n.children[i+1]
	left.keys = append(left.keys, n.keys.removeAt(i))
	left.vals = append(left.vals, n.vals.removeAt(i))
	left.keys = append(left.keys, right.keys...)
	left.vals = append(left.vals, right.vals...)
	left.children = append(left.children, right.children...)
	n.children.removeAt(i + 1)
	n.t.freeNode(right)
}

// iterate calls yield for every key of the subtree in ascending order and
// reports whether it ran to completion.
func (n *node[K, V]) iterate(yield func(K, V) bool) bool {
	for i := range n.keys {
		if len(n.children) > 0 && !n.children[i].iterate(yield) {
			return false
		}
		if !yield(n.keys[i], n.vals[i]) {
			return false
		}
	}
	if len(n.children) > 0 {
		return n.children[len(n.children)-1].iterate(yield)
	}
	return true
}

// release frees the subtree in post-order.
func (n *node[K, V]) release() {
	for _, c := range n.children {
		c.release()
	}
	n.t.freeNode(n)
}

// BTreeG is a generic implementation of a B-Tree.
//
// BTreeG stores keys of type K, each with a value of type V, in an ordered
// structure, allowing easy insertion, removal, and iteration.
//
// Neither writes nor reads concurrent with a write are safe.
type BTreeG[K any, V any] struct {
	order     int
	minDegree int
	length    int
	nodes     int
	limit     int
	root      *node[K, V]
	freelist  *FreeListG[K, V]
	less      LessFunc[K]
}

// LessFunc[T] determines how to order a type 'T'.  It should implement a strict
// ordering, and should return true if within that ordering, 'a' < 'b'.
type LessFunc[T any] func(a, b T) bool

// maxKeys returns the max number of keys to allow per node.
func (t *BTreeG[K, V]) maxKeys() int {
	return t.order - 1
}

// minKeys returns the min number of keys to allow per node (ignored for the
// root node).
func (t *BTreeG[K, V]) minKeys() int {
	return t.minDegree - 1
}

func (t *BTreeG[K, V]) newNode() (n *node[K, V]) {
	n = t.freelist.newNode()
	n.t = t
	if n.keys == nil {
		n.keys = make(items[K], 0, t.maxKeys())
		n.vals = make(items[V], 0, t.maxKeys())
	}
	t.nodes++
	return
}

func (t *BTreeG[K, V]) freeNode(n *node[K, V]) {
	// clear to allow GC
	n.keys.truncate(0)
	n.vals.truncate(0)
	n.children.truncate(0)
	n.t = nil // clear to allow GC
	t.nodes--
	t.freelist.freeNode(n)
}

// Order returns the maximum number of children of an internal node.
func (t *BTreeG[K, V]) Order() int {
	return t.order
}

// MinDegree returns the minimum number of children of a non-root internal
// node.
func (t *BTreeG[K, V]) MinDegree() int {
	return t.minDegree
}

// SetNodeLimit caps the number of nodes the tree may hold at once.  An
// insertion whose splits would exceed the cap fails with ErrAllocateFailed
// before changing anything.  Zero or a negative limit removes the cap.
func (t *BTreeG[K, V]) SetNodeLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	t.limit = limit
}

// Nodes returns the number of nodes currently making up the tree.
func (t *BTreeG[K, V]) Nodes() int {
	return t.nodes
}

// reserve fails if allocating n more nodes would cross the node limit.
func (t *BTreeG[K, V]) reserve(n int) error {
	if t.limit > 0 && t.nodes+n > t.limit {
		return errors.Wrapf(ErrAllocateFailed, "need %d new nodes, %d of %d in use", n, t.nodes, t.limit)
	}
	return nil
}

// nodesNeeded returns how many nodes inserting key would allocate: one for
// every full node at the bottom of its search path, which are exactly the
// nodes that will split, plus a new root when every node on the path is full.
func (t *BTreeG[K, V]) nodesNeeded(key K) int {
	if t.root == nil {
		return 1
	}
	full, depth := 0, 0
	n := t.root
	for {
		i, found := n.keys.find(key, t.less)
		if found {
			return 0
		}
		depth++
		if len(n.keys) == t.maxKeys() {
			full++
		} else {
			full = 0
		}
		if n.leaf() {
			break
		}
		n = n.children[i]
	}
	if full == depth {
		full++
	}
	return full
}

func (t *BTreeG[K, V]) insert(key K, val V, replace bool) (insertion[K, V], error) {
	if err := t.reserve(t.nodesNeeded(key)); err != nil {
		return insertion[K, V]{}, err
	}
	if t.root == nil {
		t.root = t.newNode()
		t.root.keys = append(t.root.keys, key)
		t.root.vals = append(t.root.vals, val)
		t.length++
		return insertion[K, V]{outcome: absorbed}, nil
	}
	res := t.root.insert(key, val, replace)
	switch res.outcome {
	case present:
		return res, nil
	case overflowed:
		// The root split: grow the tree by one level.
		oldroot := t.root
		t.root = t.newNode()
		t.root.keys = append(t.root.keys, res.key)
		t.root.vals = append(t.root.vals, res.val)
		t.root.children = append(t.root.children, oldroot, res.right)
	}
	t.length++
	return res, nil
}

// Insert adds key with its value to the tree and reports whether it did.
// If the key is already present the tree is left as it is and Insert
// returns false; use ReplaceOrInsert to overwrite.  The only error is
// ErrAllocateFailed, in which case nothing was changed.
func (t *BTreeG[K, V]) Insert(key K, val V) (bool, error) {
	res, err := t.insert(key, val, false)
	if err != nil {
		return false, err
	}
	return res.outcome != present, nil
}

// ReplaceOrInsert adds the given key and value to the tree.  If the key is
// already in the tree its value is overwritten and the previous value is
// returned, and the second return value is true.  Otherwise, (zeroValue,
// false).
func (t *BTreeG[K, V]) ReplaceOrInsert(key K, val V) (_ V, _ bool, err error) {
	res, err := t.insert(key, val, true)
	if err != nil || res.outcome != present {
		return
	}
	return res.old, true, nil
}

// Delete removes key from the tree, returning its value.  If no such key
// exists, returns (zeroValue, false).
func (t *BTreeG[K, V]) Delete(key K) (_ V, _ bool) {
	if t.root == nil {
		return
	}
	out, outb := t.root.remove(key)
	if len(t.root.keys) == 0 {
		// The root emptied: shrink the tree by one level.
		oldroot := t.root
		t.root = nil
		if !oldroot.leaf() {
			t.root = oldroot.children[0]
		}
		t.freeNode(oldroot)
	}
	if outb {
		t.length--
	}
	return out, outb
}

// Get looks for key in the tree, returning its value.  It returns
// (zeroValue, false) if unable to find that key.
func (t *BTreeG[K, V]) Get(key K) (_ V, _ bool) {
	if t.root == nil {
		return
	}
	return t.root.get(key)
}

// Has returns true if the given key is in the tree.
func (t *BTreeG[K, V]) Has(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Min returns the smallest key in the tree and its value, or found false if
// the tree is empty.
func (t *BTreeG[K, V]) Min() (K, V, bool) {
	return leftmost(t.root)
}

// Max returns the largest key in the tree and its value, or found false if
// the tree is empty.
func (t *BTreeG[K, V]) Max() (K, V, bool) {
	return rightmost(t.root)
}

// Len returns the number of keys currently in the tree.
func (t *BTreeG[K, V]) Len() int {
	return t.length
}

// Height returns the number of levels in the tree, zero when it is empty.
func (t *BTreeG[K, V]) Height() int {
	h := 0
	for n := t.root; n != nil; h++ {
		if n.leaf() {
			n = nil
		} else {
			n = n.children[0]
		}
	}
	return h
}

// Ascend calls the iterator for every key in the tree, smallest first,
// until iterator returns false.
func (t *BTreeG[K, V]) Ascend(iterator ItemIteratorG[K, V]) {
	if t.root == nil {
		return
	}
	t.root.iterate(iterator)
}

// All returns an iterator over the tree's keys and values in ascending key
// order.  Each range over it walks the tree afresh; the tree must not be
// modified while one is in progress.
func (t *BTreeG[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.Ascend(yield)
	}
}

// Keys returns an iterator over the tree's keys in ascending order.
func (t *BTreeG[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.Ascend(func(key K, _ V) bool {
			return yield(key)
		})
	}
}

// Clear removes all keys from the btree.  If addNodesToFreelist is true,
// t's nodes are released into its freelist in post-order, until the
// freelist is full.  Otherwise, the root node is simply dereferenced and the
// subtree left to Go's normal GC processes.
func (t *BTreeG[K, V]) Clear(addNodesToFreelist bool) {
	if t.root != nil && addNodesToFreelist {
		t.root.release()
	}
	t.root, t.length, t.nodes = nil, 0, 0
}

// Destroy releases every node of the tree, each exactly once, to the free
// list.  The tree is empty afterwards.
func (t *BTreeG[K, V]) Destroy() {
	t.Clear(true)
}
