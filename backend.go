package drivepath

import (
	"context"
)

// ItemID identifies a file or folder in the storage hierarchy.
type ItemID string

// Item is a read-only view of a file or folder owned by the storage backend.
type Item interface {
	ID() string
	Name() string
}

// Backend is the storage collaborator the resolver reads from.
// Implementations must not be mutated by this package; every method is a
// read-only lookup. Enumeration order of Parents, FilesByName and
// FoldersByName is backend-defined and must be stable within one call.
type Backend interface {
	// GetItem returns the item with the given ID.
	// It returns an error wrapping ErrNotFound if no such item exists.
	GetItem(ctx context.Context, id string) (Item, error)

	// Parents returns the immediate parent folders of item, possibly empty.
	Parents(ctx context.Context, item Item) ([]Item, error)

	// FilesByName returns all non-folder items whose name equals name.
	FilesByName(ctx context.Context, name string) ([]Item, error)

	// FoldersByName returns all folder items whose name equals name.
	FoldersByName(ctx context.Context, name string) ([]Item, error)
}
