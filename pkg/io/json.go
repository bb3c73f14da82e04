package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	perrors "github.com/scottgigante/prosstt/pkg/errors"
)

// ReadJSON decodes a JSON topology description from r and builds the tree.
//
// ReadJSON returns an error if the JSON is malformed or has unknown fields,
// a branch ID is invalid or duplicated, the topology is not a single-rooted
// tree, or a density array does not match its branch duration. ReadJSON
// does not close r.
func ReadJSON(r io.Reader) (*Topology, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidFormat, err, "decode JSON topology")
	}
	return doc.build()
}

// ImportJSON reads a JSON topology description from the file at path.
func ImportJSON(path string) (*Topology, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes t as an indented JSON topology description.
func WriteJSON(t *Topology, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newDocument(t)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes t to a JSON file at path.
func ExportJSON(t *Topology, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(t, f)
}
