package wfgraph

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sort"
)

// The on-disk schema is a JSON document of nodes and collections. Maps
// become arrays of explicit key/value structs (domain weights, edge
// lists) rather than JSON objects, since a generic State is not always
// a valid JSON object key (encoding/json only accepts string, integer,
// or TextMarshaler map keys) — this keeps the format valid for any
// cmp.Ordered state type while carrying the same information as the
// map-shaped form.
type domainEntry[S cmp.Ordered] struct {
	State  S       `json:"state"`
	Weight float64 `json:"weight"`
}

type edgeEntry struct {
	NeighborID    string   `json:"neighbor_id"`
	CollectionIDs []string `json:"collection_ids"`
}

type nodeEntry[S cmp.Ordered] struct {
	ID     string            `json:"id"`
	Domain []domainEntry[S]  `json:"domain_with_weights"`
	Edges  []edgeEntry       `json:"edges"`
}

type collectionEntry[S cmp.Ordered] struct {
	ID                    string `json:"id"`
	SourceState           S      `json:"source_state"`
	AllowedNeighborStates []S    `json:"allowed_neighbor_states"`
}

type document[S cmp.Ordered] struct {
	Nodes       []nodeEntry[S]       `json:"nodes"`
	Collections []collectionEntry[S] `json:"collections"`
}

// Encode writes wf to w as the self-describing JSON fixture format.
// Output is deterministic: nodes appear in declaration order, edges
// within a node are sorted by neighbor id, collections are sorted by
// id.
func Encode[S cmp.Ordered](w io.Writer, wf *WaveFunction[S]) error {
	doc := document[S]{
		Nodes:       make([]nodeEntry[S], 0, len(wf.nodes)),
		Collections: make([]collectionEntry[S], 0, len(wf.collections)),
	}

	for _, n := range wf.nodes {
		ne := nodeEntry[S]{ID: n.ID}
		for _, s := range n.domain {
			ne.Domain = append(ne.Domain, domainEntry[S]{State: s, Weight: n.Weights[s]})
		}
		neighborIDs := make([]string, 0, len(n.Edges))
		for nb := range n.Edges {
			neighborIDs = append(neighborIDs, nb)
		}
		sort.Strings(neighborIDs)
		for _, nb := range neighborIDs {
			ne.Edges = append(ne.Edges, edgeEntry{NeighborID: nb, CollectionIDs: n.Edges[nb]})
		}
		doc.Nodes = append(doc.Nodes, ne)
	}

	collIDs := make([]string, 0, len(wf.collections))
	for id := range wf.collections {
		collIDs = append(collIDs, id)
	}
	sort.Strings(collIDs)
	for _, id := range collIDs {
		c := wf.collections[id]
		allowed := make([]S, 0, len(c.AllowedNeighborStates))
		for s := range c.AllowedNeighborStates {
			allowed = append(allowed, s)
		}
		slices.Sort(allowed)
		doc.Collections = append(doc.Collections, collectionEntry[S]{
			ID:                    c.ID,
			SourceState:           c.SourceState,
			AllowedNeighborStates: allowed,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// Decode reads the JSON fixture format produced by Encode and rebuilds
// a WaveFunction via Build (without auto-validation — callers decide
// whether and when to Validate the result).
func Decode[S cmp.Ordered](r io.Reader) (*WaveFunction[S], error) {
	var doc document[S]
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeMalformed, err)
	}

	nodes := make([]Node[S], 0, len(doc.Nodes))
	for _, ne := range doc.Nodes {
		weights := make(map[S]float64, len(ne.Domain))
		for _, de := range ne.Domain {
			weights[de.State] = de.Weight
		}
		edges := make(map[string][]string, len(ne.Edges))
		for _, ee := range ne.Edges {
			edges[ee.NeighborID] = ee.CollectionIDs
		}
		nodes = append(nodes, Node[S]{ID: ne.ID, Weights: weights, Edges: edges})
	}

	collections := make([]StateCollection[S], 0, len(doc.Collections))
	for _, ce := range doc.Collections {
		allowed := make(map[S]struct{}, len(ce.AllowedNeighborStates))
		for _, s := range ce.AllowedNeighborStates {
			allowed[s] = struct{}{}
		}
		collections = append(collections, StateCollection[S]{
			ID:                    ce.ID,
			SourceState:           ce.SourceState,
			AllowedNeighborStates: allowed,
		})
	}

	return Build(nodes, collections)
}
