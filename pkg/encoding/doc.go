// Package encoding implements the five interchangeable graph encodings and
// the conversions between every ordered pair of them.
//
// The encodings are:
//
//   - [Adjacency]: node → set of direct successors. This is the hub
//     representation; most cross-encoding conversions route through it.
//   - [Edges]: an ordered list of directed (start, stop) pairs. Isolated
//     nodes are invisible in this encoding - a documented lossy boundary.
//   - [Matrix]: a square 0/1 matrix plus an ordered label list, where
//     Cells[i][j] == 1 means an edge from Labels[i] to Labels[j].
//   - [Linear]: an ordered node sequence representing a single unbranched
//     path. A singleton sequence is an isolated node.
//   - [Tree]: a rooted hierarchy with ordered children and a non-owning
//     parent back-reference.
//
// Every encoding implements the closed [Encoding] interface, exposing
// on-demand views into the other four. Conversions produce independent
// copies, never aliased views, with the single exception of Adjacency's
// identity conversion. Conversions that cannot represent their input (a
// branching graph viewed as Linear, a multi-root graph viewed as Tree)
// fail with a sentinel error rather than approximating.
package encoding
