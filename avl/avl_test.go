// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/ordertree/avl"
	"github.com/bitmark-inc/ordertree/fault"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(s.s, x.(stringItem).s)
}

type intItem int

func (n intItem) String() string {
	return fmt.Sprintf("%d", int(n))
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

// every invariant the tree promises, checked in one place
func checkInvariants(t *testing.T, tree *avl.Tree) {
	ok := tree.CheckOrder() && tree.CheckHeights() && tree.CheckBalance() && tree.CheckCounts()
	if !ok {
		depth := tree.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatal("inconsistent tree")
	}
}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"4201"}, {"1254"}, {"8608"}, {"1639"}, {"8950"},
		{"6740"},
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []stringItem{
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1247"},
		{"1250"}, {"1264"}, {"1258"}, {"1255"}, {"2247"},
		{"2004"}, {"2194"}, {"2644"}, {"2169"}, {"8133"},
		{"2136"}, {"9651"}, {"4079"}, {"1042"}, {"3579"},
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1042"},

		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

// insert all items then delete increasing prefixes, checking every
// invariant at every step
func doList(t *testing.T, addList []stringItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[stringItem]struct{})

		tree := avl.New()
		for _, key := range addList {
			tree = tree.Insert(key)
			checkInvariants(t, tree)
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			tree = tree.Delete(key)
			checkInvariants(t, tree)
			if node, _ := tree.Search(key); nil != node {
				t.Fatalf("deleted key still present: %q", key)
			}
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			tree = tree.Delete(key)
			checkInvariants(t, tree)
		}
		if !tree.IsEmpty() {
			depth := tree.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("remaining nodes")
		}
	}
}

// traverse the tree to check the iterator
func doTraverse(t *testing.T, addList []stringItem) {

	unique := make(map[string]struct{})
	tree := avl.New()
	for _, key := range addList {
		unique[key.String()] = struct{}{}
		tree = tree.Insert(key)
	}

	p := tree.First()
	if nil == p {
		t.Fatalf("no first item")
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	n := 0
	it := tree.Iterate()
	for i := 0; ; i += 1 {
		p = it.Next()
		if nil == p {
			break
		}
		if 0 != p.Key().Compare(stringItem{expected[i]}) {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}

	if 0 != tree.First().Key().Compare(stringItem{expected[0]}) {
		t.Fatalf("first item: actual: %q  expected: %q", tree.First().Key(), expected[0])
	}
	if 0 != tree.Last().Key().Compare(stringItem{expected[len(expected)-1]}) {
		t.Fatalf("last item: actual: %q  expected: %q", tree.Last().Key(), expected[len(expected)-1])
	}
}

// use indexing to fetch each item
func doGet(t *testing.T, addList []stringItem) {

	unique := make(map[string]struct{})
	tree := avl.New()
	for _, key := range addList {
		unique[key.String()] = struct{}{}
		tree = tree.Insert(key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	if len(expected) != tree.Count() {
		t.Fatalf("expected: %d items, but tree count: %d", len(expected), tree.Count())
	}

	for index, key := range expected {
		node := tree.Get(index)
		if nil == node {
			t.Fatalf("[%d] key: %q not in tree (nil result)", index, key)
		}
		if 0 != node.Key().Compare(stringItem{key}) {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, node.Key())
		}
		node1, index1 := tree.Search(stringItem{key})
		if nil == node1 {
			t.Fatalf("[%d]: search: %q returned nil", index, key)
		}
		if index != index1 {
			t.Errorf("[%d]: search: %q index: %d expected: %d", index, key, index1, index)
		}
	}
}

func makeKey() stringItem {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return stringItem{fmt.Sprintf("%04d", n%10000)}
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)

	for i := 0; i < 3; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New()
	d := make([]stringItem, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree = tree.Insert(key)
	}

	checkInvariants(t, tree)

	for _, key := range d {
		tree = tree.Delete(key)
	}
	checkInvariants(t, tree)

	// a balanced tree is never deeper than 1.4404 log2(n+2)
	if n := tree.Count(); n > 2 {
		limit := 0
		for m := n + 2; m > 1; m >>= 1 {
			limit += 1
		}
		limit = limit*144/100 + 1
		if tree.Height() > limit {
			t.Fatalf("height: %d exceeds limit: %d for count: %d", tree.Height(), limit, n)
		}
	}
}

// the empty tree has height -1 and a leaf has height 0
func TestHeightConvention(t *testing.T) {
	tree := avl.New()
	if -1 != tree.Height() {
		t.Fatalf("empty tree height: %d  expected: -1", tree.Height())
	}
	tree = tree.Insert(intItem(1))
	if 0 != tree.Height() {
		t.Fatalf("leaf height: %d  expected: 0", tree.Height())
	}
	if 0 != tree.Root().Height() || -1 != tree.Root().Left().Height() {
		t.Fatal("node height convention broken")
	}
}

// delete min of the empty tree is a programmer error
func TestDeleteMinFromEmpty(t *testing.T) {
	defer func() {
		r := recover()
		if nil == r {
			t.Fatal("delete min on empty tree did not panic")
		}
		if fault.ErrDeleteMinFromEmptyTree != r {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	avl.New().DeleteMin()
}

// drain a tree via the minimum, keys must come out ascending and the
// tree must stay balanced
func TestDeleteMin(t *testing.T) {
	addList := []int{6, 0, 8, 4, 12, 9, 7, 5, 3, 2, 1}

	tree := avl.New()
	for _, key := range addList {
		tree = tree.Insert(intItem(key))
	}

	expected := make([]int, len(addList))
	copy(expected, addList)
	sort.Ints(expected)

	for _, key := range expected {
		var min avl.Item
		min, tree = tree.DeleteMin()
		if int(min.(intItem)) != key {
			t.Fatalf("delete min: actual: %v  expected: %d", min, key)
		}
		checkInvariants(t, tree)
	}
	if !tree.IsEmpty() {
		t.Fatal("remaining nodes")
	}
}

// every previously returned version must stay observably unchanged
// while newer versions are built from it
func TestPersistence(t *testing.T) {
	addList := []stringItem{
		{"4201"}, {"1254"}, {"8608"}, {"1639"}, {"8950"},
		{"6740"}, {"0033"},
	}

	versions := []*avl.Tree{avl.New()}
	for _, key := range addList {
		versions = append(versions, versions[len(versions)-1].Insert(key))
	}

	// mutate the newest version in several ways
	newest := versions[len(versions)-1]
	_ = newest.Delete(stringItem{"8608"})
	_, _ = newest.DeleteMin()
	_ = newest.Insert(stringItem{"7777"})

	for i, tree := range versions {
		if tree.Count() != i {
			t.Fatalf("version %d count: actual: %d  expected: %d", i, tree.Count(), i)
		}
		expected := make([]string, 0, i)
		for _, key := range addList[:i] {
			expected = append(expected, key.String())
		}
		sort.Strings(expected)

		it := tree.Iterate()
		for j := 0; ; j += 1 {
			p := it.Next()
			if nil == p {
				if j != len(expected) {
					t.Fatalf("version %d count: actual: %d  expected: %d", i, j, len(expected))
				}
				break
			}
			if 0 != p.Key().Compare(stringItem{expected[j]}) {
				t.Fatalf("version %d in-order[%d]: actual: %q  expected: %q", i, j, p.Key(), expected[j])
			}
		}
		checkInvariants(t, tree)
	}
}

func TestGetChildrenByDepth(t *testing.T) {
	addList := []stringItem{
		{"01"}, {"02"}, {"03"}, {"04"}, {"05"},
		{"06"}, {"07"},
	}

	tree := avl.New()
	for _, key := range addList {
		tree = tree.Insert(key)
	}

	// seven ascending keys settle into a full three level tree
	if 0 != tree.Root().Key().Compare(stringItem{"04"}) {
		t.Fatalf("unexpected root: %q", tree.Root().Key())
	}

	if len(tree.Root().GetChildrenByDepth(0)) != 1 {
		t.Fatalf("incorrect children number in depth 0")
	}

	if len(tree.Root().GetChildrenByDepth(1)) != 2 {
		t.Fatalf("incorrect children number in depth 1")
	}

	if len(tree.Root().GetChildrenByDepth(2)) != 4 {
		t.Fatalf("incorrect children number in depth 2")
	}

	if len(tree.Root().GetChildrenByDepth(3)) != 0 {
		t.Fatalf("children found below the leaves")
	}
}

// a duplicate insert or an absent delete returns the identical version
func TestNoOpIdentity(t *testing.T) {
	tree := avl.New().Insert(intItem(50)).Insert(intItem(25)).Insert(intItem(75))

	if again := tree.Insert(intItem(25)); again != tree {
		t.Fatalf("duplicate insert returned a new version: %p  expected: %p", again, tree)
	}
	if same := tree.Delete(intItem(33)); same != tree {
		t.Fatalf("absent delete returned a new version: %p  expected: %p", same, tree)
	}
}
