// Package graph provides System, a mutable directed graph engine built on
// the adjacency encoding, and Pipeline, the linear path specialization.
//
// System supports node and edge mutation (Add, Connect, Delete,
// Disconnect), structural composition (Merge, Append, Prepend),
// subsetting, and exhaustive path enumeration between roots and
// endpoints. Every public operation either completes or fails without
// partial mutation.
//
// System enforces an acyclic discipline at the edge level: Connect
// rejects self-loops even though the raw adjacency encoding can
// represent them. A System is not safe for concurrent mutation without
// external synchronization.
package graph
