package parser

import (
	"encoding/json"
	"regexp"
	"sort"

	"github.com/flowlift/flowlift/pkg/models"
)

// envRefPattern matches environment-accessor references inside node
// parameters, e.g. the $env.API_KEY inside "{{ $env.API_KEY }}". The scan is
// textual and best-effort: expressions are not parsed, so computed or nested
// variable names are not detected. The delimiter pair around the expression
// is not required, since real exports also carry accessor references in
// string fragments outside complete expressions.
var envRefPattern = regexp.MustCompile(`\$?[eE][nN][vV]\.([A-Za-z_][A-Za-z0-9_]*)`)

// extractVariables scans each node's serialized parameters for environment
// references and returns the deduplicated, sorted name set. Serialization via
// encoding/json keeps the scan deterministic regardless of parameter map
// iteration order.
func extractVariables(nodes []*models.Node) []string {
	seen := make(map[string]struct{})

	for _, node := range nodes {
		if len(node.Parameters) == 0 {
			continue
		}

		flat, err := json.Marshal(node.Parameters)
		if err != nil {
			continue
		}

		for _, match := range envRefPattern.FindAllSubmatch(flat, -1) {
			seen[string(match[1])] = struct{}{}
		}
	}

	variables := make([]string, 0, len(seen))
	for name := range seen {
		variables = append(variables, name)
	}

	sort.Strings(variables)

	return variables
}
