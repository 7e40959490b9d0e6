package project

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osland/oscanvas/pkg/catalog"
	"github.com/osland/oscanvas/pkg/graph"
)

// validate is shared; the validator caches struct metadata internally.
var validate = validator.New()

// Export snapshots the graph into a document. Pure: the graph is not
// mutated. Connections that no longer resolve (a force-removed node, a
// port name absent from the template) are dropped silently.
func Export(g *graph.Graph, name string) *Document {
	if name == "" {
		name = DefaultName
	}
	doc := &Document{
		Name:        name,
		Nodes:       make([]NodeRecord, 0, len(g.Nodes())),
		Connections: make([]ConnectionRecord, 0, len(g.Connections())),
		Version:     FormatVersion,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, NodeRecord{
			ID: n.ID,
			Component: Component{
				ID:       n.Template.ID,
				Name:     n.Template.Name,
				Type:     n.Template.Type,
				Category: n.Template.Category,
				Color:    n.Template.Color,
				Inputs:   append([]string(nil), n.Template.Inputs...),
				Outputs:  append([]string(nil), n.Template.Outputs...),
			},
			X:          n.X,
			Y:          n.Y,
			CustomName: n.CustomName,
		})
	}

	for _, c := range g.Connections() {
		if g.Dangling(c) {
			continue
		}
		doc.Connections = append(doc.Connections, ConnectionRecord{
			ID:       c.ID,
			FromNode: c.FromNode,
			FromPort: c.FromPort,
			ToNode:   c.ToNode,
			ToPort:   c.ToPort,
		})
	}

	return doc
}

// Import replaces the graph wholesale with the document's contents,
// preserving the recorded ids so connections keep resolving. Best
// effort: entries that fail validation, carry non-finite positions,
// reuse an id, or reference a node absent from the document are skipped,
// never raised.
func Import(doc *Document, g *graph.Graph) {
	g.Clear()
	if doc == nil {
		return
	}

	imported := make(map[string]bool, len(doc.Nodes))
	for i := range doc.Nodes {
		rec := &doc.Nodes[i]
		if validate.Struct(rec) != nil {
			continue
		}
		if !finite(rec.X) || !finite(rec.Y) {
			continue
		}
		if imported[rec.ID] {
			continue
		}
		imported[rec.ID] = true

		name := rec.CustomName
		if name == "" {
			name = rec.Component.Name
		}
		g.Restore(&graph.Node{
			ID: rec.ID,
			Template: catalog.Template{
				ID:       rec.Component.ID,
				Name:     rec.Component.Name,
				Type:     rec.Component.Type,
				Category: rec.Component.Category,
				Color:    rec.Component.Color,
				Inputs:   append([]string(nil), rec.Component.Inputs...),
				Outputs:  append([]string(nil), rec.Component.Outputs...),
			},
			X:          rec.X,
			Y:          rec.Y,
			CustomName: name,
		})
	}

	for i := range doc.Connections {
		rec := &doc.Connections[i]
		if validate.Struct(rec) != nil {
			continue
		}
		if !imported[rec.FromNode] || !imported[rec.ToNode] {
			continue
		}
		g.RestoreConnection(&graph.Connection{
			ID:       rec.ID,
			FromNode: rec.FromNode,
			FromPort: rec.FromPort,
			ToNode:   rec.ToNode,
			ToPort:   rec.ToPort,
		})
	}
}

// Save writes the document as indented JSON, matching the kernel's
// expectations for save/load paths.
func Save(doc *Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write project: %w", err)
	}
	return nil
}

// Load reads a document from disk. Unreadable files and invalid JSON are
// real errors; malformed entries inside a well-formed document are
// handled later by Import.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse project: %w", err)
	}
	return &doc, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
