// Package catalog loads the shop's machine and worker taxonomy: machine
// categories, their size classes, the individual machine codes per size,
// and the worker roster per (category, size). The taxonomy is a versioned,
// read-only dataset loaded once at process start; it is configuration, not
// runtime state.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"jobshop/internal/core/domain/model/assignment"
	"jobshop/internal/pkg/errs"
)

// SupportedVersion is the taxonomy schema version this build understands.
const SupportedVersion = 1

//go:embed catalog.yaml
var defaultCatalog []byte

// Size is one size class within a machine category. Categories with a
// single machine model it as one Size named after the machine, with no
// codes.
type Size struct {
	Name    string   `yaml:"name" json:"name"`
	Codes   []string `yaml:"codes,omitempty" json:"codes,omitempty"`
	Workers []string `yaml:"workers" json:"workers"`
}

// Category is one machine family with its size classes.
type Category struct {
	Name  string `yaml:"name" json:"name"`
	Sizes []Size `yaml:"sizes" json:"sizes"`
}

type document struct {
	Version    int        `yaml:"version"`
	Categories []Category `yaml:"categories"`
}

// Catalog is the loaded taxonomy. Immutable after Load; safe for
// concurrent readers.
type Catalog struct {
	version    int
	categories []Category

	// byCategory indexes sizes by category name for O(1) selection checks.
	byCategory map[string]map[string]Size
}

// Default loads the taxonomy embedded in the binary.
func Default() (*Catalog, error) {
	return Load(defaultCatalog)
}

// LoadFile loads the taxonomy from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %q: %w", path, err)
	}
	return Load(data)
}

// Load parses a YAML taxonomy document and indexes it for selection checks.
// Returns a VersionIsInvalidError when the document's version does not match
// SupportedVersion.
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("catalog", err)
	}

	if doc.Version != SupportedVersion {
		return nil, errs.NewVersionIsInvalidError("catalog version",
			fmt.Errorf("version %d is not supported, want %d", doc.Version, SupportedVersion))
	}
	if len(doc.Categories) == 0 {
		return nil, errs.NewValueIsRequiredError("catalog categories")
	}

	byCategory := make(map[string]map[string]Size, len(doc.Categories))
	for _, c := range doc.Categories {
		if c.Name == "" {
			return nil, errs.NewValueIsRequiredError("category name")
		}
		sizes := make(map[string]Size, len(c.Sizes))
		for _, s := range c.Sizes {
			if s.Name == "" {
				return nil, errs.NewValueIsRequiredError("size name")
			}
			sizes[s.Name] = s
		}
		byCategory[c.Name] = sizes
	}

	return &Catalog{
		version:    doc.Version,
		categories: doc.Categories,
		byCategory: byCategory,
	}, nil
}

// Version returns the loaded taxonomy version.
func (c *Catalog) Version() int {
	return c.version
}

// Categories returns the taxonomy for clients rendering selection chains.
// Callers must not mutate the returned slice.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// ValidateSelection checks a machine/worker selection against the taxonomy:
// the category must exist, the size must belong to the category, a code may
// only accompany a size that defines codes (and must be one of them), and
// the worker must be on the roster for that category and size.
func (c *Catalog) ValidateSelection(sel assignment.Selection) error {
	sizes, ok := c.byCategory[sel.MachineCategory]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("machine_category",
			fmt.Errorf("%q is not in the catalog", sel.MachineCategory))
	}

	if sel.MachineSize == "" {
		return errs.NewValueIsRequiredError("machine_size")
	}
	size, ok := sizes[sel.MachineSize]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("machine_size",
			fmt.Errorf("%q is not a size of category %q", sel.MachineSize, sel.MachineCategory))
	}

	if sel.MachineCode != "" {
		if len(size.Codes) == 0 {
			return errs.NewValueIsInvalidErrorWithCause("machine_code",
				fmt.Errorf("size %q does not define machine codes", sel.MachineSize))
		}
		if !contains(size.Codes, sel.MachineCode) {
			return errs.NewValueIsInvalidErrorWithCause("machine_code",
				fmt.Errorf("%q is not a code of size %q", sel.MachineCode, sel.MachineSize))
		}
	} else if len(size.Codes) > 0 {
		return errs.NewValueIsRequiredError("machine_code")
	}

	if sel.WorkerName == "" {
		return errs.NewValueIsRequiredError("worker_name")
	}
	if !contains(size.Workers, sel.WorkerName) {
		return errs.NewValueIsInvalidErrorWithCause("worker_name",
			fmt.Errorf("%q is not on the roster for %s/%s", sel.WorkerName, sel.MachineCategory, sel.MachineSize))
	}

	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
