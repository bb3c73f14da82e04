package io

import (
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	perrors "github.com/scottgigante/prosstt/pkg/errors"
	"github.com/scottgigante/prosstt/pkg/lineage"
)

// Supported file extensions for [Import] and [Export].
const (
	ExtJSON = ".json"
	ExtTOML = ".toml"
)

// Topology is a decoded topology description. Density is nil when the
// description carries none.
type Topology struct {
	Tree    *lineage.Tree
	Density lineage.Density
}

type document struct {
	Root     string               `json:"root,omitempty" toml:"root,omitempty"`
	Branches []branch             `json:"branches,omitempty" toml:"branches,omitempty"`
	Edges    []edge               `json:"edges,omitempty" toml:"edges,omitempty"`
	Density  map[string][]float64 `json:"density,omitempty" toml:"density,omitempty"`

	// Compact pair form.
	Topology [][2]string    `json:"topology,omitempty" toml:"topology,omitempty"`
	Time     map[string]int `json:"time,omitempty" toml:"time,omitempty"`
}

type branch struct {
	ID       string `json:"id" toml:"id"`
	Duration int    `json:"duration" toml:"duration"`
}

type edge struct {
	Parent string `json:"parent" toml:"parent"`
	Child  string `json:"child" toml:"child"`
}

func (d *document) build() (*Topology, error) {
	if len(d.Branches) > 0 && len(d.Time) > 0 {
		return nil, perrors.New(perrors.ErrCodeInvalidFormat, "use either branches or time, not both")
	}
	if len(d.Edges) > 0 && len(d.Topology) > 0 {
		return nil, perrors.New(perrors.ErrCodeInvalidFormat, "use either edges or topology, not both")
	}

	durations := make(map[lineage.Branch]int, len(d.Branches)+len(d.Time))
	for _, b := range d.Branches {
		if err := perrors.ValidateBranchID(b.ID); err != nil {
			return nil, err
		}
		if _, dup := durations[lineage.Branch(b.ID)]; dup {
			return nil, perrors.New(perrors.ErrCodeInvalidTopology, "duplicate branch %q", b.ID)
		}
		durations[lineage.Branch(b.ID)] = b.Duration
	}
	for _, id := range slices.Sorted(maps.Keys(d.Time)) {
		if err := perrors.ValidateBranchID(id); err != nil {
			return nil, err
		}
		durations[lineage.Branch(id)] = d.Time[id]
	}

	edges := make([]lineage.Edge, 0, len(d.Edges)+len(d.Topology))
	for _, e := range d.Edges {
		edges = append(edges, lineage.Edge{Parent: lineage.Branch(e.Parent), Child: lineage.Branch(e.Child)})
	}
	for _, pair := range d.Topology {
		edges = append(edges, lineage.Edge{Parent: lineage.Branch(pair[0]), Child: lineage.Branch(pair[1])})
	}

	t, err := lineage.New(edges, durations, lineage.Branch(d.Root))
	if err != nil {
		return nil, perrors.FromLineage(err)
	}

	out := &Topology{Tree: t}
	if d.Density != nil {
		out.Density = make(lineage.Density, len(d.Density))
		for id, arr := range d.Density {
			out.Density[lineage.Branch(id)] = arr
		}
		if err := t.ValidateDensity(out.Density); err != nil {
			return nil, perrors.FromLineage(err)
		}
	}
	return out, nil
}

func newDocument(t *Topology) document {
	branches := t.Tree.Branches()
	doc := document{
		Root:     string(t.Tree.Root()),
		Branches: make([]branch, len(branches)),
	}
	for i, b := range branches {
		d, _ := t.Tree.Duration(b)
		doc.Branches[i] = branch{ID: string(b), Duration: d}
	}
	for _, e := range t.Tree.Edges() {
		doc.Edges = append(doc.Edges, edge{Parent: string(e.Parent), Child: string(e.Child)})
	}
	if t.Density != nil {
		doc.Density = make(map[string][]float64, len(t.Density))
		for b, arr := range t.Density {
			doc.Density[string(b)] = arr
		}
	}
	return doc
}

// Import reads a topology description, choosing the decoder from the file
// extension (.json or .toml).
func Import(path string) (*Topology, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtJSON:
		return ImportJSON(path)
	case ExtTOML:
		return ImportTOML(path)
	default:
		return nil, perrors.New(perrors.ErrCodeInvalidFormat, "unsupported topology file %q (want .json or .toml)", path)
	}
}

// Export writes a topology description, choosing the encoder from the file
// extension (.json or .toml).
func Export(t *Topology, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtJSON:
		return ExportJSON(t, path)
	case ExtTOML:
		return ExportTOML(t, path)
	default:
		return perrors.New(perrors.ErrCodeInvalidFormat, "unsupported topology file %q (want .json or .toml)", path)
	}
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, perrors.Wrap(perrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidPath, err, "open %s", path)
	}
	return f, nil
}
