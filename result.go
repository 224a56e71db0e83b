package drivepath

// PathResult is the outcome of a successful ResolvePath call.
// This is a sealed interface - the only implementations are SinglePath and
// MultiplePaths. Callers distinguish them with a type switch.
type PathResult interface {
	doNotImplement(PathResult)
}

// SinglePath is the path of an item with exactly one parent lineage.
type SinglePath struct {
	Path string
}

func (SinglePath) doNotImplement(PathResult) {}

// MultiplePaths holds one path per immediate parent of a multi-parented item,
// in the backend's parent enumeration order.
type MultiplePaths struct {
	Paths []string
}

func (MultiplePaths) doNotImplement(PathResult) {}

// IDResult is the outcome of a successful ResolveFileID or ResolveFolderID
// call. This is a sealed interface - the only implementations are SingleID
// and AmbiguousIDs.
type IDResult interface {
	doNotImplement(IDResult)
}

// SingleID is the ID of the only item matching the queried name.
type SingleID struct {
	ID string
}

func (SingleID) doNotImplement(IDResult) {}

// AmbiguousIDs disambiguates several items sharing the queried name.
// Each entry is a full path followed by the item's ID, joined with the
// resolver delimiter (e.g. "Root > Reports > 1a2b3c"), in the backend's
// match enumeration order.
type AmbiguousIDs struct {
	Entries []string
}

func (AmbiguousIDs) doNotImplement(IDResult) {}
