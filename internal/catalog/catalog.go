package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AllCategories is the synthetic category meaning "no category filter". It
// is always the first chip and never a real catalog category.
const AllCategories = "All"

// Record is one catalog entry describing a single git command.
type Record struct {
	ID          string   `yaml:"id"`
	Category    string   `yaml:"category"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Syntax      string   `yaml:"syntax"`
	Examples    []string `yaml:"examples"`
	Notes       []string `yaml:"notes,omitempty"`
}

// HasNotes reports whether the record carries notes. A missing notes key
// and an empty list are the same thing; nothing else distinguishes them.
func (r Record) HasNotes() bool { return len(r.Notes) > 0 }

// Catalog is the fixed, ordered collection of all records. It is built once
// at startup and read-only for the rest of the session.
type Catalog struct {
	Commands []Record `yaml:"commands"`
}

//go:embed commands.yaml
var embedded []byte

// Load parses the catalog compiled into the binary. The embedded document
// is trusted; its validity is pinned by tests rather than checked here.
func Load() (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(embedded, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse embedded catalog: %w", err)
	}
	return c, nil
}

// LoadFile parses and validates a user-supplied catalog file.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return c, nil
}

// Find returns the record with the given id.
func (c Catalog) Find(id string) (Record, bool) {
	for _, r := range c.Commands {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// HasCategory reports whether any record declares the given category label.
func (c Catalog) HasCategory(name string) bool {
	for _, r := range c.Commands {
		if r.Category == name {
			return true
		}
	}
	return false
}
