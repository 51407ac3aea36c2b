package wfgraph

import (
	"errors"
	"fmt"
)

// ErrValidation is the category sentinel every *ValidationError matches
// via errors.Is, regardless of its specific Kind.
var ErrValidation = errors.New("wfgraph: validation error")

// Specific validation sentinels, one per Kind. A *ValidationError wraps
// exactly one of these.
var (
	ErrDuplicateNodeID       = errors.New("wfgraph: duplicate node id")
	ErrDuplicateCollectionID = errors.New("wfgraph: duplicate state collection id")
	ErrEmptyDomain           = errors.New("wfgraph: node has an empty domain")
	ErrDanglingNeighbor      = errors.New("wfgraph: edge references an unknown neighbor id")
	ErrUnknownCollection     = errors.New("wfgraph: edge references an unknown state collection id")
	ErrSourceStateNotInDomain = errors.New("wfgraph: collection source state is absent from its node's domain")
	ErrDisconnected          = errors.New("wfgraph: graph is disconnected")
)

// ValidationError is a structural failure of a declarative WaveFunction.
// It satisfies errors.Is against both its specific sentinel (via
// Unwrap) and the blanket ErrValidation category (via Is).
type ValidationError struct {
	Kind    error  // one of the Errxxx sentinels above
	NodeID  string // offending node, if applicable
	Detail  string // human-readable detail
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.NodeID != "" {
		return fmt.Sprintf("wfgraph: validation failed at node %q: %s: %s", e.NodeID, e.Kind, e.Detail)
	}

	return fmt.Sprintf("wfgraph: validation failed: %s: %s", e.Kind, e.Detail)
}

// Unwrap exposes the specific sentinel so errors.Is(err, ErrDisconnected)
// and similar work.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Is reports a match against the blanket ErrValidation category, in
// addition to whatever Unwrap already provides.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Encoding errors.
var (
	// ErrDecodeMalformed is returned by Decode when the input does not
	// decode as JSON into the fixture schema. Missing fields are not
	// detected here; they decode as empty values and are left to Build.
	ErrDecodeMalformed = errors.New("wfgraph: malformed encoding")
)
