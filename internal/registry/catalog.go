// internal/registry/catalog.go

// Package registry holds the catalog of runnable analysis tools. The
// built-in table covers the supported toolbox; a YAML overlay file can
// add descriptors or override categories and binary names without a
// rebuild.
package registry

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"scanforge/internal/core/domain"
	"scanforge/internal/platform/logx"
)

// Catalog is a thread-safe tool descriptor store implementing
// ports.ToolCatalog.
type Catalog struct {
	mu     sync.RWMutex
	tools  map[string]domain.ToolDescriptor
	logger logx.Logger
}

// NewCatalog creates a catalog pre-populated with the built-in toolbox.
func NewCatalog(logger logx.Logger) *Catalog {
	c := &Catalog{
		tools:  make(map[string]domain.ToolDescriptor, len(builtinTools)),
		logger: logger.With("component", "catalog"),
	}
	for _, d := range builtinTools {
		c.tools[d.ID] = d
	}
	return c
}

// Register adds or replaces one descriptor. An empty id or binary is
// rejected; a missing display name defaults to the id.
func (c *Catalog) Register(d domain.ToolDescriptor) error {
	if d.ID == "" {
		return fmt.Errorf("tool id cannot be empty")
	}
	if d.Binary == "" {
		return fmt.Errorf("tool %s: binary cannot be empty", d.ID)
	}
	if d.Name == "" {
		d.Name = d.ID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.tools[d.ID]; exists {
		c.logger.Debug("tool descriptor overridden", "id", d.ID, "binary", d.Binary)
	}
	c.tools[d.ID] = d
	return nil
}

// LoadFile merges descriptors from a YAML overlay file into the catalog.
// Entries with an id already present replace the built-in descriptor.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog file %s: %w", path, err)
	}

	var overlay struct {
		Tools []domain.ToolDescriptor `yaml:"tools"`
	}
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	for _, d := range overlay.Tools {
		if err := c.Register(d); err != nil {
			return fmt.Errorf("catalog file %s: %w", path, err)
		}
	}

	c.logger.Info("catalog overlay loaded", "path", path, "entries", len(overlay.Tools))
	return nil
}

// Get returns the descriptor for a tool id.
func (c *Catalog) Get(id string) (domain.ToolDescriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.tools[id]
	return d, ok
}

// List returns every registered descriptor sorted by id.
func (c *Catalog) List() []domain.ToolDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.ToolDescriptor, 0, len(c.tools))
	for _, d := range c.tools {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered tools.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.tools)
}
