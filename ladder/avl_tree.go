// Copyright 2025 Naren Yellavula
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

package ladder

import (
	"cmp"
	"iter"
)

// allowedImbalance is the largest height difference tolerated between siblings.
const allowedImbalance = 1

// AVLNode is a single tree node. Each node exclusively owns its subtrees.
type AVLNode[K any] struct {
	Key    K
	Height int // -1 for an absent node, 0 for a leaf
	Left   *AVLNode[K]
	Right  *AVLNode[K]
}

// extracted carries the result of removing the minimum from a subtree:
// the removed key together with the new root of that subtree.
type extracted[K any] struct {
	key  K
	root *AVLNode[K]
}

// Tree is a self-balancing binary search tree ordered by a comparator.
// Equal keys are allowed; they are kept in the right subtree of the first
// tie encountered, so their relative order is not preserved across rotations.
//
// A Tree is not safe for concurrent use.
type Tree[K any] struct {
	Root    *AVLNode[K]
	compare func(a, b K) int
	size    int
}

// NewTree returns an empty tree ordered by compare, which must return a
// negative number when a < b, zero when equal and a positive number otherwise.
func NewTree[K any](compare func(a, b K) int) *Tree[K] {
	return &Tree[K]{compare: compare}
}

// NewOrderedTree returns an empty tree over naturally ordered keys.
func NewOrderedTree[K cmp.Ordered]() *Tree[K] {
	return NewTree[K](cmp.Compare[K])
}

func (tree *Tree[K]) getHeight(node *AVLNode[K]) int {
	if node == nil {
		return -1
	}
	return node.Height
}

func (tree *Tree[K]) updateHeight(node *AVLNode[K]) {
	node.Height = max(tree.getHeight(node.Left), tree.getHeight(node.Right)) + 1
}

func (tree *Tree[K]) getBalanceFactor(node *AVLNode[K]) int {
	if node == nil {
		return 0
	}
	return tree.getHeight(node.Left) - tree.getHeight(node.Right)
}

func (tree *Tree[K]) rotateLeft(node *AVLNode[K]) *AVLNode[K] {
	if node == nil || node.Right == nil {
		return node
	}

	pivot := node.Right
	node.Right = pivot.Left
	pivot.Left = node

	tree.updateHeight(node)
	tree.updateHeight(pivot)

	return pivot
}

func (tree *Tree[K]) rotateRight(node *AVLNode[K]) *AVLNode[K] {
	if node == nil || node.Left == nil {
		return node
	}

	pivot := node.Left
	node.Left = pivot.Right
	pivot.Right = node

	tree.updateHeight(node)
	tree.updateHeight(pivot)

	return pivot
}

// rebalance restores the AVL invariant at node, assuming both subtrees are
// already balanced and differ in height by at most two.
func (tree *Tree[K]) rebalance(node *AVLNode[K]) *AVLNode[K] {
	if node == nil {
		return nil
	}
	tree.updateHeight(node)

	balanceFactor := tree.getBalanceFactor(node)

	// Left-heavy
	if balanceFactor > allowedImbalance {
		if tree.getBalanceFactor(node.Left) >= 0 {
			return tree.rotateRight(node)
		}
		// Left-Right case
		node.Left = tree.rotateLeft(node.Left)
		return tree.rotateRight(node)
	}

	// Right-heavy
	if balanceFactor < -allowedImbalance {
		if tree.getBalanceFactor(node.Right) <= 0 {
			return tree.rotateLeft(node)
		}
		// Right-Left case
		node.Right = tree.rotateRight(node.Right)
		return tree.rotateLeft(node)
	}

	return node
}

// Insert adds key to the tree. Duplicates are kept.
func (tree *Tree[K]) Insert(key K) {
	tree.Root = tree.insertRecursive(tree.Root, key)
	tree.size++
}

func (tree *Tree[K]) insertRecursive(node *AVLNode[K], key K) *AVLNode[K] {
	if node == nil {
		return &AVLNode[K]{Key: key}
	}

	if tree.compare(key, node.Key) < 0 {
		node.Left = tree.insertRecursive(node.Left, key)
	} else {
		node.Right = tree.insertRecursive(node.Right, key)
	}

	return tree.rebalance(node)
}

// Contains reports whether a key comparing equal to key is stored.
func (tree *Tree[K]) Contains(key K) bool {
	node := tree.Root
	for node != nil {
		c := tree.compare(key, node.Key)
		switch {
		case c < 0:
			node = node.Left
		case c > 0:
			node = node.Right
		default:
			return true
		}
	}
	return false
}

// RemoveOne deletes a single occurrence of key and reports whether one was found.
func (tree *Tree[K]) RemoveOne(key K) bool {
	var removed bool
	tree.Root = tree.deleteRecursive(tree.Root, key, &removed)
	if removed {
		tree.size--
	}
	return removed
}

func (tree *Tree[K]) deleteRecursive(node *AVLNode[K], key K, removed *bool) *AVLNode[K] {
	if node == nil {
		return nil // Key not found
	}

	c := tree.compare(key, node.Key)
	switch {
	case c < 0:
		node.Left = tree.deleteRecursive(node.Left, key, removed)
	case c > 0:
		node.Right = tree.deleteRecursive(node.Right, key, removed)
	default:
		*removed = true
		if node.Left == nil {
			return node.Right
		}
		if node.Right == nil {
			return node.Left
		}
		// Two children: pull the in-order successor up and drop it from the right subtree.
		successor := tree.removeMin(node.Right)
		node.Key = successor.key
		node.Right = successor.root
	}

	return tree.rebalance(node)
}

// removeMin detaches the leftmost node of a non-empty subtree. The detached
// node's right subtree takes its place, and every node on the left spine is
// rebalanced on the way back up.
func (tree *Tree[K]) removeMin(node *AVLNode[K]) extracted[K] {
	if node.Left == nil {
		return extracted[K]{key: node.Key, root: node.Right}
	}
	res := tree.removeMin(node.Left)
	node.Left = res.root
	return extracted[K]{key: res.key, root: tree.rebalance(node)}
}

// ExtractMin removes and returns the smallest key. The boolean is false when
// the tree is empty.
func (tree *Tree[K]) ExtractMin() (K, bool) {
	if tree.Root == nil {
		var zero K
		return zero, false
	}
	res := tree.removeMin(tree.Root)
	tree.Root = res.root
	tree.size--
	return res.key, true
}

// FindMin returns the smallest key without removing it.
func (tree *Tree[K]) FindMin() (K, error) {
	if tree.Root == nil {
		var zero K
		return zero, ErrUnderflow
	}
	node := tree.Root
	for node.Left != nil {
		node = node.Left
	}
	return node.Key, nil
}

// FindMax returns the largest key without removing it.
func (tree *Tree[K]) FindMax() (K, error) {
	if tree.Root == nil {
		var zero K
		return zero, ErrUnderflow
	}
	node := tree.Root
	for node.Right != nil {
		node = node.Right
	}
	return node.Key, nil
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[K]) IsEmpty() bool {
	return tree.Root == nil
}

// Clear drops every key.
func (tree *Tree[K]) Clear() {
	tree.Root = nil
	tree.size = 0
}

// Len returns the number of stored keys, duplicates included.
func (tree *Tree[K]) Len() int {
	return tree.size
}

// Height returns the height of the root, or -1 for an empty tree.
func (tree *Tree[K]) Height() int {
	return tree.getHeight(tree.Root)
}

// All yields the keys in ascending order.
func (tree *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		inOrder(tree.Root, yield)
	}
}

func inOrder[K any](node *AVLNode[K], yield func(K) bool) bool {
	if node == nil {
		return true
	}
	return inOrder(node.Left, yield) && yield(node.Key) && inOrder(node.Right, yield)
}
