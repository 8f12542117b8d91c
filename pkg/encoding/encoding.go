package encoding

// Encoding is the shared capability interface over the five graph
// encodings. The implementations are exactly [Adjacency], [Edges],
// [Matrix], [Linear], and [*Tree]; the set is closed, and new encodings
// extend this package rather than implement the interface externally.
//
// Converting an encoding to its own kind returns an equivalent instance.
// All conversions copy; only Adjacency's identity conversion may alias
// its receiver.
//
// Adjacency, Edges, and Matrix views are total. Linear and Tree views can
// fail: not every graph is an unbranched path or a single-rooted
// hierarchy that reaches every node. Those methods report [ErrNotLinear],
// [ErrNoRoot], [ErrMultipleRoots], or [ErrUnreachableNodes] instead of
// approximating.
type Encoding interface {
	Adjacency() Adjacency
	Edges() Edges
	Matrix() Matrix
	Linear() (Linear, error)
	Tree() (*Tree, error)
}

var (
	_ Encoding = Adjacency(nil)
	_ Encoding = Edges(nil)
	_ Encoding = Matrix{}
	_ Encoding = Linear(nil)
	_ Encoding = (*Tree)(nil)
)
