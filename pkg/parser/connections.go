package parser

import (
	"sort"

	"github.com/flowlift/flowlift/pkg/models"
)

// The source format's connection structure is irregular. A source entry may
// be a map keyed by port name, a positional list of port slots, a flat edge
// list, or a bare single edge object; port slots may themselves be either an
// edge list or a single edge. Classification below makes the variants
// explicit so normalization handles each shape exactly once instead of
// type-switching at every nesting level.

type rawShape int

const (
	shapeInvalid rawShape = iota
	shapeEdge             // {"node": ...} or an already-normalized {"target": ...}
	shapeList             // list of edges, nested lists, or a mix
	shapePortMap          // {"main": [...], "error": [...]}
)

func classify(value any) rawShape {
	switch v := value.(type) {
	case map[string]any:
		if isEdgeObject(v) {
			return shapeEdge
		}

		return shapePortMap
	case []any:
		return shapeList
	}

	return shapeInvalid
}

// isEdgeObject distinguishes an edge from a port-keyed wrapper. Normalized
// key spellings are accepted alongside the source format's so that feeding
// normalized output back through the parser is a no-op.
func isEdgeObject(m map[string]any) bool {
	if _, ok := m["node"]; ok {
		return true
	}

	_, ok := m["target"]

	return ok
}

// normalizeConnections flattens every supported shape into the uniform
// name -> []Edge adjacency. Malformed entries are skipped and counted.
// Dangling targets are kept as-is; reporting them is the caller's business.
func normalizeConnections(raw any) (map[string][]models.Edge, int) {
	connections := make(map[string][]models.Edge)

	if raw == nil {
		return connections, 0
	}

	sources, ok := raw.(map[string]any)
	if !ok {
		return connections, 1
	}

	skipped := 0

	for sourceName, value := range sources {
		edges, entrySkipped := normalizeSource(value)
		skipped += entrySkipped

		if edges != nil {
			connections[sourceName] = edges
		}
	}

	return connections, skipped
}

// normalizeSource handles one source-node entry. A nil edge slice means the
// entry was entirely malformed and the source should be omitted.
func normalizeSource(value any) ([]models.Edge, int) {
	switch classify(value) {
	case shapeEdge:
		edge := parseEdge(value.(map[string]any), "main", 0)

		return []models.Edge{edge}, 0

	case shapeList:
		return normalizePort("main", value.([]any))

	case shapePortMap:
		ports := value.(map[string]any)

		// Port names are iterated sorted so output order is stable.
		names := make([]string, 0, len(ports))
		for name := range ports {
			names = append(names, name)
		}

		sort.Strings(names)

		edges := make([]models.Edge, 0)
		skipped := 0

		for _, portName := range names {
			portEdges, portSkipped := normalizePortValue(portName, ports[portName])
			edges = append(edges, portEdges...)
			skipped += portSkipped
		}

		return edges, skipped
	}

	return nil, 1
}

// normalizePortValue handles one named port slot, which is either an edge
// list (possibly nested) or a single bare edge.
func normalizePortValue(portName string, value any) ([]models.Edge, int) {
	switch classify(value) {
	case shapeEdge:
		return []models.Edge{parseEdge(value.(map[string]any), portName, 0)}, 0
	case shapeList:
		return normalizePort(portName, value.([]any))
	}

	return nil, 1
}

// normalizePort flattens a port's edge list. Elements may be edge objects or
// nested edge lists; for nested lists the outer position supplies the port
// index when the edge does not carry one explicitly.
func normalizePort(portName string, entries []any) ([]models.Edge, int) {
	edges := make([]models.Edge, 0, len(entries))
	skipped := 0

	for position, entry := range entries {
		switch item := entry.(type) {
		case map[string]any:
			if !isEdgeObject(item) {
				skipped++

				continue
			}

			edges = append(edges, parseEdge(item, portName, position))

		case []any:
			for _, nested := range item {
				edgeMap, ok := nested.(map[string]any)
				if !ok || !isEdgeObject(edgeMap) {
					skipped++

					continue
				}

				edges = append(edges, parseEdge(edgeMap, portName, position))
			}

		default:
			skipped++
		}
	}

	return edges, skipped
}

// parseEdge reads an edge object in either the source spelling
// (node/type/index) or the normalized one (target/port_type/port_index).
// fallbackIndex is the list position, used when no index is present.
func parseEdge(m map[string]any, portName string, fallbackIndex int) models.Edge {
	edge := models.Edge{
		PortType:  portName,
		PortIndex: fallbackIndex,
	}

	if target, ok := m["node"].(string); ok {
		edge.Target = target
	} else if target, ok := m["target"].(string); ok {
		edge.Target = target
	}

	if portType, ok := m["type"].(string); ok && portType != "" {
		edge.PortType = portType
	} else if portType, ok := m["port_type"].(string); ok && portType != "" {
		edge.PortType = portType
	}

	if index, ok := m["index"]; ok {
		edge.PortIndex = int(toFloat(index))
	} else if index, ok := m["port_index"]; ok {
		edge.PortIndex = int(toFloat(index))
	}

	return edge
}
