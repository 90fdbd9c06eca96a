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
	"fmt"
	"math/rand"
	"os"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

var demoKeys = []int{10, 11, 15, 12, 6, 18, 13, 8, 14, 25, 30, 9, 5, 16, 35, 40, 27}

func keysOf(t *BTree) []int {
	return slices.Collect(t.Keys())
}

func mustNew(t testing.TB, order, minDegree int) *BTree {
	t.Helper()
	tr, err := New(order, minDegree)
	require.NoError(t, err)
	return tr
}

func ExampleBTree() {
	tr, _ := New(5, 3)
	for _, k := range demoKeys {
		tr.Insert(k)
	}
	fmt.Println(tr)
	fmt.Println("height:", tr.Height())
	fmt.Println("search 14:", tr.Search(14))
	tr.Delete(14)
	fmt.Println(tr)
	fmt.Println("height:", tr.Height())
	fmt.Println("search 14:", tr.Search(14))
	fmt.Println("search 35:", tr.Search(35))
	// Output:
	// ( ( ( 5 6 ) 8 ( 9 10 ) 11 ( 12 13 ) ) 14 ( ( 15 16 ) 18 ( 25 27 ) 30 ( 35 40 ) ) )
	// height: 3
	// search 14: true
	// ( ( 5 6 ) 8 ( 9 10 11 12 ) 13 ( 15 16 ) 18 ( 25 27 ) 30 ( 35 40 ) )
	// height: 2
	// search 14: false
	// search 35: true
}

func ExampleBTree_Print() {
	tr, _ := New(5, 3)
	for i := 0; i < 10; i++ {
		tr.Insert(i)
	}
	tr.Print(os.Stdout)
	// Output:
	// NODE:[2 5]
	//   NODE:[0 1]
	//   NODE:[3 4]
	//   NODE:[6 7 8 9]
}

func TestDemoSequence(t *testing.T) {
	tr := mustNew(t, 5, 3)
	for _, k := range demoKeys {
		inserted, err := tr.Insert(k)
		require.NoError(t, err)
		require.True(t, inserted)
		require.NoError(t, tr.Check())
	}
	require.True(t, tr.Search(14))
	require.True(t, tr.Delete(14))
	require.NoError(t, tr.Check())
	require.False(t, tr.Search(14))
	require.True(t, tr.Search(35))

	want := slices.Clone(demoKeys)
	slices.Sort(want)
	want = slices.DeleteFunc(want, func(k int) bool { return k == 14 })
	require.Len(t, want, 16)
	require.Equal(t, want, keysOf(tr))
	require.Equal(t, 16, tr.Len())
}

func TestSingleKey(t *testing.T) {
	tr := mustNew(t, 5, 3)
	require.False(t, tr.Search(1), "search on empty tree")
	require.False(t, tr.Delete(1), "delete on empty tree")

	_, err := tr.Insert(7)
	require.NoError(t, err)
	require.Equal(t, 1, tr.Height())
	require.True(t, tr.Delete(7))

	require.Equal(t, "<>", tr.String())
	require.Equal(t, 0, tr.Height())
	require.Equal(t, 0, tr.Len())
	require.Nil(t, tr.g.root)
	require.False(t, tr.Search(7))
	require.False(t, tr.Search(100))
	require.NoError(t, tr.Check())
}

func TestRootSplit(t *testing.T) {
	for _, tc := range []struct {
		order, minDegree int
	}{
		{3, 2}, {4, 2}, {5, 2}, {5, 3}, {6, 3}, {7, 4}, {9, 5}, {10, 3},
	} {
		t.Run(fmt.Sprintf("m=%d,t=%d", tc.order, tc.minDegree), func(t *testing.T) {
			tr := mustNew(t, tc.order, tc.minDegree)
			for k := 0; k < tc.order-1; k++ {
				tr.Insert(k)
			}
			require.Equal(t, 1, tr.Height(), "m-1 keys must fit in the root")

			tr.Insert(tc.order - 1)
			require.Equal(t, 2, tr.Height())
			root := tr.g.root
			require.Len(t, root.keys, 1)
			require.Len(t, root.children, 2)
			require.Len(t, root.children[0].keys, tc.minDegree-1)
			require.Len(t, root.children[1].keys, tc.order-tc.minDegree)
			require.NoError(t, tr.Check())
		})
	}
}

// Every position of the incoming key relative to the midpoint of a full
// m=5, t=3 leaf.
func TestSplitPosition(t *testing.T) {
	for _, tc := range []struct {
		key  int
		want string
	}{
		{5, "( ( 5 10 ) 20 ( 30 40 ) )"},
		{15, "( ( 10 15 ) 20 ( 30 40 ) )"},
		{25, "( ( 10 20 ) 25 ( 30 40 ) )"},
		{35, "( ( 10 20 ) 30 ( 35 40 ) )"},
		{45, "( ( 10 20 ) 30 ( 40 45 ) )"},
	} {
		tr := mustNew(t, 5, 3)
		for _, k := range []int{10, 20, 30, 40} {
			tr.Insert(k)
		}
		tr.Insert(tc.key)
		require.Equal(t, tc.want, tr.String(), "inserting %d", tc.key)
		require.NoError(t, tr.Check())
	}
}

func TestDeleteRebalance(t *testing.T) {
	tr := mustNew(t, 4, 2)
	for k := 1; k <= 10; k++ {
		tr.Insert(k)
	}
	require.Equal(t, "( ( ( 1 ) 2 ( 3 ) ) 4 ( ( 5 ) 6 ( 7 ) 8 ( 9 10 ) ) )", tr.String())

	for _, step := range []struct {
		key  int
		want string
	}{
		// Internal key: predecessor 3 moves up, its leaf empties and
		// merges, then the level above borrows from its right sibling.
		{4, "( ( ( 1 2 ) 3 ( 5 ) ) 6 ( ( 7 ) 8 ( 9 10 ) ) )"},
		// Leaf key, merge with the right sibling.
		{1, "( ( ( 2 ) 3 ( 5 ) ) 6 ( ( 7 ) 8 ( 9 10 ) ) )"},
		// Leaf key, borrow from the right sibling.
		{7, "( ( ( 2 ) 3 ( 5 ) ) 6 ( ( 8 ) 9 ( 10 ) ) )"},
	} {
		require.True(t, tr.Delete(step.key))
		require.Equal(t, step.want, tr.String(), "deleting %d", step.key)
		require.NoError(t, tr.Check())
	}
}

func TestDuplicateInsert(t *testing.T) {
	tr := mustNew(t, 5, 3)
	for _, k := range demoKeys {
		tr.Insert(k)
	}
	before := tr.String()
	for _, k := range demoKeys {
		inserted, err := tr.Insert(k)
		require.NoError(t, err)
		require.False(t, inserted, "duplicate %d", k)
	}
	require.Equal(t, before, tr.String())
	require.Equal(t, len(demoKeys), tr.Len())
}

func TestIdempotentDelete(t *testing.T) {
	tr := mustNew(t, 5, 3)
	for _, k := range demoKeys {
		tr.Insert(k)
	}
	before := tr.String()
	require.False(t, tr.Delete(99))
	require.False(t, tr.Delete(99))
	require.Equal(t, before, tr.String())

	require.True(t, tr.Delete(12))
	after := tr.String()
	require.False(t, tr.Delete(12))
	require.Equal(t, after, tr.String())
	require.False(t, tr.Search(12))
}

func TestHeightChanges(t *testing.T) {
	for _, tc := range []struct {
		order, minDegree int
	}{
		{3, 2}, {5, 3}, {8, 4}, {11, 3},
	} {
		tr := mustNew(t, tc.order, tc.minDegree)
		r := rand.New(rand.NewSource(int64(tc.order)))
		for i := 0; i < 2000; i++ {
			k := r.Intn(300)
			h := tr.Height()
			if r.Intn(2) == 0 {
				rootFull := tr.g.root != nil && len(tr.g.root.keys) == tc.order-1
				tr.Insert(k)
				switch tr.Height() - h {
				case 0:
				case 1:
					require.True(t, h == 0 || rootFull, "height grew without a full root")
					require.Len(t, tr.g.root.keys, 1)
				default:
					t.Fatalf("height went from %d to %d on insert", h, tr.Height())
				}
			} else {
				tr.Delete(k)
				require.Contains(t, []int{0, -1}, tr.Height()-h, "height went from %d to %d on delete", h, tr.Height())
			}
		}
	}
}

func TestInvalidConfig(t *testing.T) {
	for _, tc := range []struct {
		order, minDegree int
	}{
		{2, 2}, {3, 1}, {5, 4}, {5, 0}, {4, 3}, {0, 0}, {10, 6},
	} {
		tr, err := New(tc.order, tc.minDegree)
		require.ErrorIs(t, err, ErrInvalidConfig, "order %d, minimum degree %d", tc.order, tc.minDegree)
		require.Nil(t, tr)
	}
	for _, tc := range []struct {
		order, minDegree int
	}{
		{3, 2}, {4, 2}, {5, 3}, {10, 5}, {11, 6},
	} {
		_, err := New(tc.order, tc.minDegree)
		require.NoError(t, err, "order %d, minimum degree %d", tc.order, tc.minDegree)
	}
}

func TestNodeLimit(t *testing.T) {
	tr := mustNew(t, 5, 3)
	for k := 1; k <= 4; k++ {
		tr.Insert(k)
	}
	// The full root leaf needs two nodes to split: a sibling and a new root.
	tr.SetNodeLimit(2)
	before := tr.String()
	inserted, err := tr.Insert(5)
	require.ErrorIs(t, err, ErrAllocateFailed)
	require.False(t, inserted)
	require.Equal(t, before, tr.String())
	require.Equal(t, 4, tr.Len())
	require.NoError(t, tr.Check())

	// Duplicates allocate nothing.
	inserted, err = tr.Insert(3)
	require.NoError(t, err)
	require.False(t, inserted)

	tr.SetNodeLimit(3)
	inserted, err = tr.Insert(5)
	require.NoError(t, err)
	require.True(t, inserted)
	require.Equal(t, 3, tr.g.Nodes())
	// A non-full leaf takes the key without allocating.
	inserted, err = tr.Insert(6)
	require.NoError(t, err)
	require.True(t, inserted)
}

func TestDestroy(t *testing.T) {
	tr := mustNew(t, 5, 3)
	for _, k := range rand.Perm(200) {
		tr.Insert(k)
	}
	nodes := tr.g.Nodes()
	require.Greater(t, nodes, 1)
	free := tr.g.freelist.Len()
	tr.Destroy()
	require.Equal(t, 0, tr.Len())
	require.Equal(t, 0, tr.g.Nodes())
	require.Equal(t, "<>", tr.String())
	require.Equal(t, min(free+nodes, DefaultFreeListSize), tr.g.freelist.Len())
	require.False(t, tr.Search(3))

	// Released nodes are reused.
	for _, k := range rand.Perm(50) {
		tr.Insert(k)
	}
	require.NoError(t, tr.Check())
	require.Equal(t, 50, tr.Len())
}
