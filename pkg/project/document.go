// Package project serializes the graph to and from the JSON project
// document exchanged with the OSland kernel's save/load commands.
package project

// FormatVersion is written into every exported document.
const FormatVersion = "1.0"

// DefaultName is used when no project name is set.
const DefaultName = "Untitled Project"

// Component is the by-value template copy carried inside a node record.
type Component struct {
	ID       string   `json:"id" validate:"required"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Category string   `json:"category,omitempty"`
	Color    string   `json:"color,omitempty"`
	Inputs   []string `json:"inputs,omitempty"`
	Outputs  []string `json:"outputs,omitempty"`
}

// NodeRecord is one placed node. CustomName is an additive field; readers
// that predate it fall back to the component name.
type NodeRecord struct {
	ID         string    `json:"id" validate:"required"`
	Component  Component `json:"component"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	CustomName string    `json:"customName,omitempty"`
}

// ConnectionRecord is one directed port-to-port edge.
type ConnectionRecord struct {
	ID       string `json:"id" validate:"required"`
	FromNode string `json:"fromNode" validate:"required"`
	FromPort string `json:"fromPort" validate:"required"`
	ToNode   string `json:"toNode" validate:"required"`
	ToPort   string `json:"toPort" validate:"required"`
}

// Document is the serializable snapshot of one project.
type Document struct {
	Name        string             `json:"name"`
	Nodes       []NodeRecord       `json:"nodes"`
	Connections []ConnectionRecord `json:"connections"`
	Version     string             `json:"version"`
	Timestamp   string             `json:"timestamp"`
}
