// Package tree builds and checks binary trees whose nodes live in a pool.
package tree

import "github.com/pavanmanishd/pool"

// Node is a tree node. Children are Refs into the owning pool, so a Node
// holds no Go pointers and may live in Mmap-backed pools.
type Node struct {
	Left  pool.Ref
	Right pool.Ref
}

// Pool is a node pool.
type Pool = pool.Pool[Node]

// Make builds a complete tree of the given depth in p and returns its root.
func Make(p *Pool, depth int) pool.Ref {
	ref, n := p.AcquireRef()
	if depth > 0 {
		n.Right = Make(p, depth-1)
		n.Left = Make(p, depth-1)
	}
	return ref
}

// Check returns the number of nodes in the tree rooted at ref.
func Check(p *Pool, ref pool.Ref) int {
	n := p.Get(ref)
	if n.Left.IsNil() && n.Right.IsNil() {
		return 1
	}
	return 1 + Check(p, n.Right) + Check(p, n.Left)
}

// Size returns the node count of a complete tree of the given depth.
func Size(depth int) int {
	return 1<<(depth+1) - 1
}
