package drivepath

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// DefaultDelimiter separates path segments in resolved paths.
	DefaultDelimiter = " > "
	// DefaultMaxResults caps parent lineages and name matches per call.
	DefaultMaxResults = 10
)

// Resolver resolves names, IDs and paths against a storage hierarchy.
// Items may be filed under multiple folders at once, so a single item can
// have several legitimate full paths; the resolver enumerates all of them
// instead of picking one arbitrarily.
//
// A Resolver is read-only and keeps no state between calls.
type Resolver struct {
	backend Backend
	log     zerolog.Logger
}

// NewResolver creates a Resolver over the given backend.
func NewResolver(backend Backend) *Resolver {
	return &Resolver{backend: backend, log: zerolog.Nop()}
}

// WithLogger returns a copy of the resolver that emits debug traces to log.
func (r *Resolver) WithLogger(log zerolog.Logger) *Resolver {
	return &Resolver{backend: r.backend, log: log}
}

// ResolvePath returns the full path of the item with the given itemID,
// from the hierarchy root down to the item's immediate parent.
//
// An empty delimiter means DefaultDelimiter and maxPaths == 0 means
// DefaultMaxResults. The result is SinglePath for a single-parented item and
// MultiplePaths, one path per immediate parent in backend enumeration order,
// for a multi-parented one. An item with more immediate parents than maxPaths
// fails with ErrLimitExceeded.
func (r *Resolver) ResolvePath(ctx context.Context, itemID string, delimiter string, maxPaths int) (PathResult, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	if maxPaths == 0 {
		maxPaths = DefaultMaxResults
	}
	if err := validatePathArgs(itemID, maxPaths); err != nil {
		return nil, err
	}

	item, err := r.backend.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item '%s': %w", itemID, err)
	}
	parents, err := r.backend.Parents(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to list parents of '%s': %w", itemID, err)
	}

	n := len(parents)
	r.log.Debug().Str("itemId", itemID).Int("parents", n).Msg("resolving path")
	switch {
	case n == 0:
		// Backends give root-level items an implicit root parent, so this
		// should not happen in practice.
		return nil, fmt.Errorf("item '%s' has no parent folders: %w", itemID, ErrNotFound)
	case n > maxPaths:
		return nil, fmt.Errorf("item '%s' has %d parent folders, more than the configured maximum of %d: %w", itemID, n, maxPaths, ErrLimitExceeded)
	}

	paths := make([]string, 0, n)
	for _, parent := range parents {
		names, err := r.lineage(ctx, parent)
		if err != nil {
			return nil, err
		}
		names = append(names, parent.Name())
		paths = append(paths, strings.Join(names, delimiter))
	}
	if n == 1 {
		return SinglePath{Path: paths[0]}, nil
	}
	return MultiplePaths{Paths: paths}, nil
}

// ResolveFileID returns the ID of the file with the given name.
//
// maxMatches == 0 means DefaultMaxResults. A unique match yields SingleID;
// several matches yield AmbiguousIDs with one "path > id" entry per match
// (one per lineage when a match is itself multi-parented), in backend match
// order. No match fails with ErrNotFound, more than maxMatches with
// ErrLimitExceeded.
func (r *Resolver) ResolveFileID(ctx context.Context, name string, maxMatches int) (IDResult, error) {
	return r.resolveID(ctx, name, maxMatches, "file", r.backend.FilesByName)
}

// ResolveFolderID returns the ID of the folder with the given name.
// It behaves exactly like ResolveFileID, scoped to folders.
func (r *Resolver) ResolveFolderID(ctx context.Context, name string, maxMatches int) (IDResult, error) {
	return r.resolveID(ctx, name, maxMatches, "folder", r.backend.FoldersByName)
}

// lineage walks from item up to the hierarchy root, taking the first
// enumerated parent at each level, and returns the ancestor names in
// root-first order. The name of item itself is not included.
func (r *Resolver) lineage(ctx context.Context, item Item) (names []string, err error) {
	current := item
	for {
		parents, err := r.backend.Parents(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("failed to list parents of '%s': %w", current.ID(), err)
		}
		if len(parents) == 0 {
			break
		}
		current = parents[0]
		names = append(names, current.Name())
	}
	slices.Reverse(names)
	return names, nil
}

func (r *Resolver) resolveID(ctx context.Context, name string, maxMatches int, kind string, listByName func(context.Context, string) ([]Item, error)) (IDResult, error) {
	if maxMatches == 0 {
		maxMatches = DefaultMaxResults
	}
	if err := validateNameArgs(name, maxMatches); err != nil {
		return nil, err
	}

	matches, err := listByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss named '%s': %w", kind, name, err)
	}

	n := len(matches)
	r.log.Debug().Str("name", name).Str("kind", kind).Int("matches", n).Msg("resolving id")
	switch {
	case n == 0:
		return nil, fmt.Errorf("no %s named '%s': %w", kind, name, ErrNotFound)
	case n > maxMatches:
		return nil, fmt.Errorf("%d %ss named '%s', more than the configured maximum of %d: %w", n, kind, name, maxMatches, ErrLimitExceeded)
	case n == 1:
		return SingleID{ID: matches[0].ID()}, nil
	}

	entries := make([]string, 0, n)
	for _, match := range matches {
		result, err := r.ResolvePath(ctx, match.ID(), DefaultDelimiter, DefaultMaxResults)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path of %s '%s': %w", kind, match.ID(), err)
		}
		switch result := result.(type) {
		case SinglePath:
			entries = append(entries, result.Path+DefaultDelimiter+match.ID())
		case MultiplePaths:
			for _, path := range result.Paths {
				entries = append(entries, path+DefaultDelimiter+match.ID())
			}
		}
	}
	return AmbiguousIDs{Entries: entries}, nil
}
