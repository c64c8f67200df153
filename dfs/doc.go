// Package dfs implements the depth-first preorder walk over a spanning tree
// produced by prim_kruskal.Prim.
//
// What:
//
//   - TreeFromParents turns a parent array (Parent[v] = u for the tree edge
//     u→v, -1 for roots) into child lists: v is appended to Children[u] in
//     ascending v.
//   - Preorder walks the tree recursively from a root, following only child
//     links (never general graph adjacency). The visiting order is the
//     approximate TSP tour used by the triangular solver.
//
// Why:
//
//   - Shortcutting a doubled MST walk is the classic 2-approximation for
//     metric TSP; the preorder is exactly that shortcut.
//
// Options:
//
//   - WithOnVisit(fn) pre-order hook; returning an error aborts the walk.
//
// Errors:
//
//   - ErrTreeNil          if the tree is nil.
//   - ErrRootOutOfRange   if root is not a vertex of the tree.
//   - any error returned by OnVisit (wrapped).
//
// Complexity:
//
//   - Time:   O(V) for TreeFromParents and for Preorder.
//   - Memory: O(V) for the child lists, visited flags and recursion stack.
package dfs
