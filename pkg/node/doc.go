// Package node provides the identity and edge primitives shared by every
// graph encoding in composite.
//
// A node is addressed everywhere by its [ID], a stable hashable name.
// [Identity] binds an arbitrary payload to an ID so that rich values can
// participate in graphs while equality and hashing remain name-based.
// Two identities are equal iff their IDs are equal, regardless of payload.
//
// The package also hosts the two boundary contracts the encodings rely on:
//
//   - [Canonicalize] derives a stable ID from an arbitrary value without
//     mutating it.
//   - [Sequence] normalizes nil, a scalar, or a collection into a uniform
//     ordered slice of IDs.
package node
