// Package parser converts raw workflow-export documents into the normalized
// intermediate representation in pkg/models.
//
// The source ecosystem produces partial, irregular exports. Everything short
// of undecodable input is tolerated: missing fields get zero values and
// malformed connection entries are skipped and counted, never raised.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/flowlift/flowlift/pkg/models"
)

// webhookTypePrefix is the reserved node type the source editor assigns to
// bare webhook entry points. Such nodes do not carry the "trigger" substring
// in their type but still start a workflow.
const webhookTypePrefix = "n8n-nodes-base.webhook"

// ParseError is the only fatal parser failure: the input text was not
// decodable as structured data. Offset is the byte offset reported by the
// decoder, or -1 when unavailable.
type ParseError struct {
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("invalid workflow document at byte %d: %v", e.Offset, e.Err)
	}

	return fmt.Sprintf("invalid workflow document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes raw document text and normalizes it. The returned *ParseError
// is the only error this package produces.
func Parse(raw []byte) (*models.Workflow, error) {
	var doc map[string]any

	if err := json.Unmarshal(raw, &doc); err != nil {
		offset := int64(-1)

		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			offset = syntaxErr.Offset
		}

		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			offset = typeErr.Offset
		}

		return nil, &ParseError{Offset: offset, Err: err}
	}

	return ParseDocument(doc), nil
}

// ParseDocument normalizes an already-decoded document. It cannot fail: every
// irregularity degrades to zero values or a skip count in Workflow.Stats.
func ParseDocument(doc map[string]any) *models.Workflow {
	workflow := &models.Workflow{
		Name: "Untitled",
	}

	if name, ok := doc["name"].(string); ok && name != "" {
		workflow.Name = name
	}

	workflow.Nodes, workflow.Stats.SkippedNodes = parseNodes(doc["nodes"])
	workflow.Connections, workflow.Stats.SkippedConnections = normalizeConnections(doc["connections"])

	workflow.Triggers = make([]*models.Node, 0)
	for _, node := range workflow.Nodes {
		if IsTriggerType(node.Type) {
			workflow.Triggers = append(workflow.Triggers, node)
		}
	}

	workflow.Variables = extractVariables(workflow.Nodes)

	return workflow
}

// IsTriggerType reports whether a node type identifies a trigger node. This
// is a heuristic over the open-ended source type namespace, not a closed
// enumeration: any type containing "trigger" counts, plus the reserved
// webhook node type which starts workflows without carrying the substring.
func IsTriggerType(nodeType string) bool {
	lower := strings.ToLower(nodeType)

	return strings.Contains(lower, "trigger") || strings.HasPrefix(lower, webhookTypePrefix)
}

func parseNodes(raw any) ([]*models.Node, int) {
	nodes := make([]*models.Node, 0)

	entries, ok := raw.([]any)
	if !ok {
		if raw == nil {
			return nodes, 0
		}

		return nodes, 1
	}

	skipped := 0

	for _, entry := range entries {
		record, ok := entry.(map[string]any)
		if !ok {
			skipped++

			continue
		}

		nodes = append(nodes, parseNode(record))
	}

	return nodes, skipped
}

func parseNode(record map[string]any) *models.Node {
	node := &models.Node{}

	node.ID, _ = record["id"].(string)
	node.Name, _ = record["name"].(string)
	node.Type, _ = record["type"].(string)
	node.Disabled, _ = record["disabled"].(bool)

	if params, ok := record["parameters"].(map[string]any); ok {
		node.Parameters = params
	} else {
		node.Parameters = make(map[string]any)
	}

	if creds, ok := record["credentials"].(map[string]any); ok {
		node.CredentialsRef = creds
	}

	if position, ok := record["position"].([]any); ok {
		if len(position) > 0 {
			node.PositionX = toFloat(position[0])
		}

		if len(position) > 1 {
			node.PositionY = toFloat(position[1])
		}
	}

	return node
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}

	return 0
}
