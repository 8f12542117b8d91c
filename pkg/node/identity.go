package node

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// ID is the stable, hashable name of a node. All encodings key their
// storage by ID, so two nodes with the same ID are the same node.
type ID string

// String returns the ID as a plain string.
func (id ID) String() string { return string(id) }

// Identity binds an arbitrary payload to an ID. The ID is assigned once at
// construction and is immutable afterwards; the payload is owned by the
// identity and never copied or mutated by the encodings that reference it.
//
// Equality and hashing are by ID only. Use [Identify] to derive the ID from
// the payload or [Named] to assign one explicitly.
type Identity struct {
	id      ID
	payload any
}

// Identify wraps payload in an Identity whose ID is derived with
// [Canonicalize].
func Identify(payload any) Identity {
	return Identity{id: Canonicalize(payload), payload: payload}
}

// Named wraps payload in an Identity with an explicit ID, overriding
// derivation.
func Named(id ID, payload any) Identity {
	return Identity{id: id, payload: payload}
}

// ID returns the identity's name.
func (n Identity) ID() ID { return n.id }

// Payload returns the wrapped value. It may be nil.
func (n Identity) Payload() any { return n.payload }

// Equal reports whether both identities carry the same ID. Payloads are
// not compared.
func (n Identity) Equal(other Identity) bool { return n.id == other.id }

// String returns the identity's name.
func (n Identity) String() string { return string(n.id) }

// Canonicalize derives a stable ID from an arbitrary value. It is
// deterministic for equal values and never mutates its argument.
//
// Resolution order:
//
//  1. ID and Identity values pass through unchanged.
//  2. Strings become their own ID.
//  3. fmt.Stringer values use String().
//  4. Other named types use a snake-cased form of the type name, matching
//     the convention that a node type stands for one node.
//  5. Anything left (unnamed types, maps, slices) gets a deterministic
//     UUIDv5 of its printed form.
func Canonicalize(value any) ID {
	switch v := value.(type) {
	case nil:
		return ""
	case ID:
		return v
	case Identity:
		return v.id
	case string:
		return ID(v)
	case fmt.Stringer:
		return ID(v.String())
	}

	t := reflect.TypeOf(value)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" && t.Kind() == reflect.Struct {
		return ID(snakify(name))
	}

	// Deterministic fallback: equal printed forms yield equal IDs.
	return ID(uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "%#v", value)).String())
}

// Sequence normalizes a value into an ordered slice of IDs: nil becomes an
// empty slice, a scalar becomes a single-element slice, and collections are
// converted element-wise with order preserved.
func Sequence(value any) []ID {
	switch v := value.(type) {
	case nil:
		return nil
	case []ID:
		out := make([]ID, len(v))
		copy(out, v)
		return out
	case []string:
		out := make([]ID, len(v))
		for i, s := range v {
			out[i] = ID(s)
		}
		return out
	case []Identity:
		out := make([]ID, len(v))
		for i, n := range v {
			out[i] = n.id
		}
		return out
	case []any:
		out := make([]ID, len(v))
		for i, item := range v {
			out[i] = Canonicalize(item)
		}
		return out
	default:
		return []ID{Canonicalize(value)}
	}
}

// snakify converts a CamelCase type name to snake_case.
func snakify(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
