package wfgraph

import (
	"cmp"
	"fmt"
	"slices"
)

// config holds the parsed effect of every BuildOption.
type config struct {
	autoValidate bool
}

// BuildOption configures Build's behavior.
type BuildOption func(*config)

// WithAutoValidate makes Build call Validate itself before returning,
// folding validation errors into Build's own return value. Off by
// default — callers that want to inspect a WaveFunction before
// validating (e.g. to print it) can call Validate explicitly.
func WithAutoValidate() BuildOption {
	return func(c *config) { c.autoValidate = true }
}

// Build assembles a WaveFunction from declarative nodes and state
// collections, computing each node's sorted domain from its Weights
// key set. It rejects structurally malformed input immediately:
// duplicate node ids, duplicate collection ids, and empty domains.
// Graph-wide checks (dangling references, connectivity) are the
// responsibility of Validate, run automatically only if
// WithAutoValidate is passed.
func Build[S cmp.Ordered](nodes []Node[S], collections []StateCollection[S], opts ...BuildOption) (*WaveFunction[S], error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	wf := &WaveFunction[S]{
		nodes:       make([]*Node[S], 0, len(nodes)),
		index:       make(map[string]int, len(nodes)),
		collections: make(map[string]*StateCollection[S], len(collections)),
	}

	for i := range nodes {
		n := nodes[i] // copy
		if _, dup := wf.index[n.ID]; dup {
			return nil, &ValidationError{Kind: ErrDuplicateNodeID, NodeID: n.ID, Detail: fmt.Sprintf("node id %q appears more than once", n.ID)}
		}
		if len(n.Weights) == 0 {
			return nil, &ValidationError{Kind: ErrEmptyDomain, NodeID: n.ID, Detail: "domain (Weights) is empty"}
		}
		domain := make([]S, 0, len(n.Weights))
		for s := range n.Weights {
			domain = append(domain, s)
		}
		slices.Sort(domain)
		n.domain = domain

		wf.index[n.ID] = len(wf.nodes)
		wf.nodes = append(wf.nodes, &n)
	}

	for i := range collections {
		c := collections[i] // copy
		if _, dup := wf.collections[c.ID]; dup {
			return nil, &ValidationError{Kind: ErrDuplicateCollectionID, Detail: fmt.Sprintf("collection id %q appears more than once", c.ID)}
		}
		wf.collections[c.ID] = &c
	}

	if cfg.autoValidate {
		if err := wf.Validate(); err != nil {
			return nil, err
		}
	}

	return wf, nil
}
