// Package dfs implements depth-first preorder traversal over tree child lists.
package dfs

import "fmt"

// TreeFromParents builds child lists from a parent array.
// For every v with parent[v] >= 0, v is appended to Children[parent[v]];
// vertices are scanned in ascending ID so each list is sorted.
// Parents outside 0..len(parent)-1 are ignored.
//
// Complexity: O(V).
func TreeFromParents(parent []int) *Tree {
	t := &Tree{Children: make([][]int, len(parent))}
	for v, p := range parent {
		if p < 0 || p >= len(parent) || p == v {
			continue
		}
		t.Children[p] = append(t.Children[p], v)
	}

	return t
}

// treeWalker encapsulates state during a preorder walk.
type treeWalker struct {
	tree    *Tree
	opts    DFSOptions
	visited []bool
	res     *DFSResult
}

// Preorder visits the tree from root, each vertex once, children in list order.
// Visited flags are fresh for every call, so repeated walks never share state.
// Vertices not reachable from root through child links are absent from Order.
func Preorder(t *Tree, root int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input
	if t == nil {
		return nil, ErrTreeNil
	}
	if root < 0 || root >= t.Len() {
		return nil, ErrRootOutOfRange
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize result
	n := t.Len()
	res := &DFSResult{
		Order: make([]int, 0, n),
		Depth: make([]int, n),
	}
	for i := range res.Depth {
		res.Depth[i] = -1
	}

	w := &treeWalker{tree: t, opts: dopts, visited: make([]bool, n), res: res}
	if err := w.traverse(root, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse records id, then recurses into its unvisited children.
func (w *treeWalker) traverse(id int, depth int) error {
	w.visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	for _, c := range w.tree.Children[id] {
		if c < 0 || c >= len(w.visited) || w.visited[c] {
			continue
		}
		if err := w.traverse(c, depth+1); err != nil {
			return err
		}
	}

	return nil
}
