// Package drivepathmust wraps the drivepath package with panic-based error handling.
//
// It provides the same resolution operations as the root-level drivepath
// package, but instead of returning errors, all exported methods panic on failure.
package drivepathmust

import (
	"context"

	"github.com/Jumpaku/go-drivepath"
	"google.golang.org/api/drive/v3"
)

// Resolver resolves names, IDs and paths against a storage hierarchy.
//
// All methods of Resolver panic on error instead of returning an error value.
type Resolver struct {
	resolver *drivepath.Resolver
}

// New creates a new Resolver over a Google Drive backend.
// The service should be properly authenticated before being passed to this function.
func New(service *drive.Service) *Resolver {
	return &Resolver{resolver: drivepath.New(service)}
}

// NewResolver creates a new Resolver over the given backend.
func NewResolver(backend drivepath.Backend) *Resolver {
	return &Resolver{resolver: drivepath.NewResolver(backend)}
}

// ResolvePath returns the full path of the item with the given itemID.
//
// It panics if the item cannot be found or the path cannot be resolved.
func (r *Resolver) ResolvePath(ctx context.Context, itemID string, delimiter string, maxPaths int) drivepath.PathResult {
	return must1(r.resolver.ResolvePath(ctx, itemID, delimiter, maxPaths))
}

// ResolveFileID returns the ID of the file with the given name.
//
// It panics if no file matches or the matches cannot be disambiguated.
func (r *Resolver) ResolveFileID(ctx context.Context, name string, maxMatches int) drivepath.IDResult {
	return must1(r.resolver.ResolveFileID(ctx, name, maxMatches))
}

// ResolveFolderID returns the ID of the folder with the given name.
//
// It panics if no folder matches or the matches cannot be disambiguated.
func (r *Resolver) ResolveFolderID(ctx context.Context, name string, maxMatches int) drivepath.IDResult {
	return must1(r.resolver.ResolveFolderID(ctx, name, maxMatches))
}
