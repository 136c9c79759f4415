// Package mapper resolves parsed node types to target-system capabilities.
//
// Mapping tables are plain caller-supplied values. There is no package-level
// default table and no hidden merge state, so MapNodes is safe to call from
// any number of goroutines over shared input.
package mapper

import (
	"math"

	"github.com/flowlift/flowlift/pkg/models"
)

// MapNodes partitions nodes by whether their type resolves to a target
// capability. Overrides are consulted before table, so a caller can patch an
// incomplete table without forking it. Every input node lands in exactly one
// partition; nothing is dropped.
func MapNodes(nodes []*models.Node, table, overrides map[string]string) models.MapResult {
	result := models.MapResult{
		Mapped:   make([]models.MappingEntry, 0, len(nodes)),
		Unmapped: make([]models.MappingEntry, 0),
	}

	for _, node := range nodes {
		capability, found := overrides[node.Type]
		if !found {
			capability, found = table[node.Type]
		}

		if found {
			target := capability
			result.Mapped = append(result.Mapped, models.MappingEntry{
				Node:             node,
				TargetCapability: &target,
			})
		} else {
			result.Unmapped = append(result.Unmapped, models.MappingEntry{
				Node: node,
			})
		}
	}

	result.Coverage = roundCoverage(float64(len(result.Mapped)) / float64(max(len(nodes), 1)))

	return result
}

// roundCoverage fixes the ratio to four decimal places so results are stable
// across platforms and easy to assert against.
func roundCoverage(ratio float64) float64 {
	return math.Round(ratio*10000) / 10000
}
