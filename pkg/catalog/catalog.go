// Package catalog holds the static registry of component templates the
// user can place on the canvas. Templates are loaded once (built-in set
// plus optional TOML files) and never mutated afterwards.
package catalog

import "strings"

// Template is the immutable descriptor a node is instantiated from.
type Template struct {
	ID       string   `toml:"id"`
	Name     string   `toml:"name"`
	Type     string   `toml:"type"`
	Category string   `toml:"category"`
	Color    string   `toml:"color"`
	Inputs   []string `toml:"inputs"`
	Outputs  []string `toml:"outputs"`
}

// Catalog is a lookup table of templates, ordered as loaded.
type Catalog struct {
	templates []Template
	byID      map[string]*Template
}

// New creates a catalog from a list of templates.
func New(templates []Template) *Catalog {
	c := &Catalog{
		templates: templates,
		byID:      make(map[string]*Template, len(templates)),
	}
	for i := range c.templates {
		c.byID[c.templates[i].ID] = &c.templates[i]
	}
	return c
}

// All returns every template in load order.
func (c *Catalog) All() []Template {
	return c.templates
}

// Get returns the template with the given id, or nil.
func (c *Catalog) Get(id string) *Template {
	return c.byID[id]
}

// ByCategory returns templates filtered by category.
func (c *Catalog) ByCategory(category string) []Template {
	var results []Template
	for _, t := range c.templates {
		if t.Category == category {
			results = append(results, t)
		}
	}
	return results
}

// Categories returns the unique categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, t := range c.templates {
		if !seen[t.Category] {
			seen[t.Category] = true
			cats = append(cats, t.Category)
		}
	}
	return cats
}

// Search finds templates matching a query against id, name, type and category.
func (c *Catalog) Search(query string) []Template {
	q := strings.ToLower(query)
	var results []Template
	for _, t := range c.templates {
		if matches(t, q) {
			results = append(results, t)
		}
	}
	return results
}

func matches(t Template, query string) bool {
	if strings.Contains(strings.ToLower(t.ID), query) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Name), query) {
		return true
	}
	if strings.ToLower(t.Type) == query {
		return true
	}
	if strings.ToLower(t.Category) == query {
		return true
	}
	return false
}
