package ioformat

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/zumanm1/ospf-netplan/internal/apperror"
	"github.com/zumanm1/ospf-netplan/topology"
)

// LoadYAML parses a YAML fixture using the same node/link shape as the
// JSON wire document, for tests and CLI scenario files that prefer YAML's
// lower punctuation density over JSON.
func LoadYAML(raw []byte) (*topology.Snapshot, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, apperror.InvalidTopology("malformed_yaml", fmt.Sprintf("ioformat: %v", err))
	}
	return buildFromWire(doc.Data.Nodes, doc.Data.Links)
}
