package io

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	perrors "github.com/scottgigante/prosstt/pkg/errors"
)

// ReadTOML decodes a TOML topology description from r and builds the tree.
// It applies the same validation as [ReadJSON]. Unknown keys are rejected so
// typos such as "duraton" do not silently drop data.
func ReadTOML(r io.Reader) (*Topology, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidFormat, err, "decode TOML topology")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, perrors.New(perrors.ErrCodeInvalidFormat, "unknown TOML keys: %v", undecoded)
	}
	return doc.build()
}

// ImportTOML reads a TOML topology description from the file at path.
func ImportTOML(path string) (*Topology, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTOML(f)
}

// WriteTOML encodes t as a TOML topology description.
func WriteTOML(t *Topology, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(newDocument(t)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportTOML writes t to a TOML file at path.
func ExportTOML(t *Topology, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteTOML(t, f)
}
