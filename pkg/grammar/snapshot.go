package grammar

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// SnapshotVersion is bumped whenever the snapshot layout changes.
const SnapshotVersion = 1

type snapshot struct {
	Version           int          `yaml:"version"`
	Start             string       `yaml:"start"`
	ResolvedConflicts int          `yaml:"resolved_conflicts"`
	Productions       []Production `yaml:"productions"`
	Rows              []Row        `yaml:"rows"`
}

// WriteSnapshot serializes the table as a versioned YAML asset, so a
// build step can persist the generated table and ship it alongside the
// driver.
func (t *Table) WriteSnapshot(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(snapshot{
		Version:           SnapshotVersion,
		Start:             t.Start,
		ResolvedConflicts: t.ResolvedConflicts,
		Productions:       t.Productions,
		Rows:              t.Rows,
	})
}

// ReadSnapshot loads a table previously written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*Table, error) {
	var snap snapshot
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("grammar: decoding snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("grammar: unsupported snapshot version %d", snap.Version)
	}
	return &Table{
		Start:             snap.Start,
		Productions:       snap.Productions,
		Rows:              snap.Rows,
		ResolvedConflicts: snap.ResolvedConflicts,
	}, nil
}
