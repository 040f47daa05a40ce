// CSV loading and named-dataset resolution, grounded on
// original_source/project/graphs.py's get_graph/graph_from_csv -- minus the
// network fetch, which spec §1 places out of scope as an external
// collaborator. FromCSV is the pure, in-process half of that pipeline;
// DatasetResolver is the extension point a caller wires a real network
// fetcher into.
package graph

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/reallybigsky/formal-lang-course/errs"
)

// ErrBadRecord indicates a CSV record did not have exactly 3 fields
// (source,target,label).
var ErrBadRecord = fmt.Errorf("graph: csv record must have 3 fields: %w", errs.ParseError)

// FromCSV reads "source,target,label" triples from r and builds a Graph.
// Comments starting with '#' and blank lines are skipped, matching the
// permissive ingestion style of spec §6's grammar text format.
func FromCSV(r io.Reader) (*Graph, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	g := New()
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return g, nil
		}
		if err != nil {
			return nil, fmt.Errorf("graph.FromCSV: %w: %v", errs.IOError, err)
		}
		if len(rec) == 0 {
			continue
		}
		if len(rec) != 3 {
			return nil, ErrBadRecord
		}
		if _, err := g.AddEdge(rec[0], rec[2], rec[1]); err != nil {
			return nil, err
		}
	}
}

// DatasetResolver resolves a named dataset identifier (e.g. "pr", "ls",
// "pizza", "people", spec §6) to a Graph. The core never ships a concrete
// network-backed implementation; callers register one (e.g. backed by an
// HTTP fetch + FromCSV) via a DatasetRegistry.
type DatasetResolver interface {
	Resolve(name string) (*Graph, error)
}

// ErrUnknownDataset indicates no resolver is registered for the requested
// dataset name.
var ErrUnknownDataset = fmt.Errorf("graph: no resolver registered for dataset: %w", errs.IOError)

// DatasetRegistry is a DatasetResolver dispatching to sub-resolvers by name.
// The zero value has no entries and always returns ErrUnknownDataset.
type DatasetRegistry struct {
	resolvers map[string]DatasetResolver
}

// NewDatasetRegistry returns an empty registry.
func NewDatasetRegistry() *DatasetRegistry {
	return &DatasetRegistry{resolvers: make(map[string]DatasetResolver)}
}

// Register associates name with resolver, overwriting any prior entry.
func (reg *DatasetRegistry) Register(name string, resolver DatasetResolver) {
	reg.resolvers[name] = resolver
}

// Resolve implements DatasetResolver.
func (reg *DatasetRegistry) Resolve(name string) (*Graph, error) {
	r, ok := reg.resolvers[name]
	if !ok {
		return nil, fmt.Errorf("graph.DatasetRegistry.Resolve(%q): %w", name, ErrUnknownDataset)
	}
	return r.Resolve(name)
}
