// Package store persists named graph documents.
//
// Two backends share one interface: an in-memory store for the CLI and
// tests, and a MongoDB store for the API deployment. Documents are the
// wire-format graphs of pkg/codec, keyed by name.
package store

import (
	"context"
	"errors"

	"github.com/matzehuels/composite/pkg/codec"
)

// ErrNotFound is returned when a requested graph does not exist.
var ErrNotFound = errors.New("graph not found")

// Store is the persistence interface for named graph documents.
// Save overwrites an existing document with the same name.
type Store interface {
	Save(ctx context.Context, name string, doc codec.Graph) error
	Load(ctx context.Context, name string) (codec.Graph, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
	Close(ctx context.Context) error
}
