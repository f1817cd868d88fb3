// Package merkle builds binary hash trees over ordered records.
//
// A level with an odd number of nodes promotes its trailing node unchanged to
// the next level instead of duplicating it, so the root of [A, B, C] is
// H(H(A||B) || C) rather than H(H(A||B) || H(C||C)).
package merkle

import (
	"github.com/luca-patrignani/merkle-ledger/digest"
)

// Leaf is anything that can be turned into the string hashed for its leaf.
type Leaf interface {
	Serialize() string
}

// Node is a vertex of the tree. Leaves have no children; every other node
// has exactly two, which it owns.
type Node struct {
	hash  string
	left  *Node
	right *Node
}

// Hash returns the node digest as lowercase hex.
func (n *Node) Hash() string { return n.hash }

// Left returns the left child, or nil for a leaf.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child, or nil for a leaf.
func (n *Node) Right() *Node { return n.right }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return n.left == nil && n.right == nil }

// Tree is an immutable Merkle tree. The zero value is the empty tree.
type Tree struct {
	root   *Node
	leaves int
	depth  int
}

// New builds the tree over leaves in the given order.
func New[L Leaf](leaves []L) *Tree {
	t := &Tree{leaves: len(leaves)}
	if len(leaves) == 0 {
		return t
	}

	level := make([]*Node, len(leaves))
	for i, l := range leaves {
		level[i] = &Node{hash: digest.Sum(l.Serialize())}
	}

	for len(level) > 1 {
		next := make([]*Node, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				continue
			}
			a, b := level[i], level[i+1]
			next = append(next, &Node{
				hash:  digest.Concat(a.hash, b.hash),
				left:  a,
				right: b,
			})
		}
		level = next
		t.depth++
	}
	t.root = level[0]
	return t
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// RootHash returns the root digest, or "" for an empty tree.
func (t *Tree) RootHash() string {
	if t == nil || t.root == nil {
		return ""
	}
	return t.root.hash
}

// LeafCount returns how many leaves the tree was built from.
func (t *Tree) LeafCount() int {
	if t == nil {
		return 0
	}
	return t.leaves
}

// Depth returns the number of pairing rounds needed to reach the root.
// A single-leaf tree has depth 0.
func (t *Tree) Depth() int {
	if t == nil {
		return 0
	}
	return t.depth
}

// LeafHashes returns the leaf digests from left to right.
func (t *Tree) LeafHashes() []string {
	hashes := make([]string, 0, t.LeafCount())
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			hashes = append(hashes, n.hash)
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t.Root())
	return hashes
}
