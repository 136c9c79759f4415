// Package models defines the intermediate representation for translated
// workflow-export documents.
package models

// Workflow is the normalized form of a single exported workflow document.
// It is assembled once by the parser and never mutated afterwards.
type Workflow struct {
	// Name of the workflow, "Untitled" when the export carries none.
	Name string `json:"name"`

	// Nodes in document order. Order reflects the visual layout of the
	// source editor, not execution order.
	Nodes []*Node `json:"nodes"`

	// Connections maps a source node name to its outgoing edges. The
	// source format keys connections by display name rather than node ID.
	Connections map[string][]Edge `json:"connections"`

	// Triggers is the subset of Nodes whose type matches the trigger
	// detection heuristic. Entries alias the same Node values as Nodes.
	Triggers []*Node `json:"triggers"`

	// Variables lists environment-variable names referenced anywhere in
	// node parameters, deduplicated and sorted.
	Variables []string `json:"variables"`

	// Stats records irregularities tolerated during parsing.
	Stats ParseStats `json:"stats"`
}

// ParseStats counts input irregularities the parser skipped over instead of
// failing on.
type ParseStats struct {
	SkippedConnections int `json:"skipped_connections"`
	SkippedNodes       int `json:"skipped_nodes"`
}

// Node is a single step in the workflow graph.
type Node struct {
	// ID is unique within a well-formed export, but the source format
	// does not guarantee it. Treat as untrusted.
	ID string `json:"id"`

	// Name is the display label. The source format uses it, not ID, as
	// the connection-graph key.
	Name string `json:"name"`

	// Type is a free-form identifier, usually a dotted namespace path.
	Type string `json:"type"`

	// Parameters is the raw nested configuration of the node. Shape
	// varies by type and is not schema-validated here.
	Parameters map[string]any `json:"parameters"`

	// Position is cosmetic editor layout data.
	PositionX float64 `json:"position_x"`
	PositionY float64 `json:"position_y"`

	// CredentialsRef is an opaque credential reference. Never resolved.
	CredentialsRef map[string]any `json:"credentials,omitempty"`

	Disabled bool `json:"disabled"`
}

// Edge is one directed connection between nodes. Edges have no identity
// beyond their field tuple; duplicates are legal and preserved.
type Edge struct {
	// Target is the name of the node pointed to. It may be dangling:
	// the source format permits edges to names with no matching node,
	// and those are preserved for downstream reporting.
	Target string `json:"target"`

	// PortType distinguishes logical output ports, e.g. "main", "error".
	PortType string `json:"port_type"`

	// PortIndex disambiguates multiple edges on the same port.
	PortIndex int `json:"port_index"`
}
