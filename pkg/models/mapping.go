package models

// MappingEntry pairs a node with the target capability it mapped to.
// TargetCapability is nil for nodes in the unmapped partition.
type MappingEntry struct {
	Node             *Node   `json:"node"`
	TargetCapability *string `json:"target_capability"`
}

// MapResult partitions a node list into mapped and unmapped entries.
// Every input node appears in exactly one partition.
type MapResult struct {
	Mapped   []MappingEntry `json:"mapped"`
	Unmapped []MappingEntry `json:"unmapped"`

	// Coverage is len(Mapped)/len(nodes), rounded to four decimal
	// places. Zero for an empty node list.
	Coverage float64 `json:"coverage"`
}
