package demo

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/graph-guard/chmap"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var ErrNoEntries = errors.New("dataset has no entries")
var ErrEntryNoKey = errors.New("entry is missing a key")

// Dataset describes the initial contents of a demonstration map.
type Dataset struct {
	// Capacity is the fixed slot count of the map,
	// defaults to the number of entries when omitted.
	Capacity int `yaml:"capacity"`

	Entries []Entry `yaml:"entries"`
}

// Entry is one key-value pair of a dataset.
type Entry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// ReadDataset parses and validates a YAML dataset.
func ReadDataset(r io.Reader) (*Dataset, error) {
	d := &Dataset{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(d); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	if len(d.Entries) < 1 {
		return nil, ErrNoEntries
	}
	for i, e := range d.Entries {
		if e.Key == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEntryNoKey)
		}
	}
	if d.Capacity == 0 {
		d.Capacity = len(d.Entries)
	}
	if d.Capacity < 1 {
		return nil, fmt.Errorf("dataset: %w", chmap.ErrCapacity)
	}
	return d, nil
}

// ReadDatasetFile reads a YAML dataset from the file at path.
func ReadDatasetFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()
	return ReadDataset(f)
}

// Fill appends n synthetic entries with random UUID keys,
// useful for demonstrating the slot spread and collision chaining
// of larger datasets. The capacity is left unchanged.
func (d *Dataset) Fill(n int) {
	for i := 0; i < n; i++ {
		d.Entries = append(d.Entries, Entry{
			Key:   uuid.NewString(),
			Value: fmt.Sprintf("synthetic %d", i),
		})
	}
}

// Load builds a map of the dataset's capacity holding all its entries.
// Duplicate keys overwrite in dataset order.
func (d *Dataset) Load(hasher chmap.Hasher[string]) (
	*chmap.Map[string, string], error,
) {
	m, err := chmap.New[string, string](d.Capacity, hasher)
	if err != nil {
		return nil, err
	}
	for _, e := range d.Entries {
		m.Put(e.Key, e.Value)
	}
	return m, nil
}
