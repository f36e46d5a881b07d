package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/zumanm1/ospf-netplan/internal/netlog"
	"github.com/zumanm1/ospf-netplan/internal/progress"
	"github.com/zumanm1/ospf-netplan/ioformat"
	"github.com/zumanm1/ospf-netplan/topology"
)

// loadTopology reads a topology document from path, dispatching on
// extension: ".yaml"/".yml" uses ioformat.LoadYAML, anything else uses
// ioformat.ImportTopology (JSON, spec.md §6's wire shape).
func loadTopology(path string) (*topology.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("netplan: read %s: %w", path, err)
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return ioformat.LoadYAML(raw)
	}
	return ioformat.ImportTopology(raw)
}

// printResult writes v to stdout as indented JSON, matching spec.md §6's
// "all serializable to JSON with field names matching §3/§4" contract.
func printResult(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newLogger builds the CLI's logger per the --verbose flag, per
// SPEC_FULL.md's ambient logging stack.
func newLogger(component, operation string) netlog.Logger {
	level := "info"
	if verbose {
		level = "debug"
	}
	return netlog.New(netlog.WithLevel(level), netlog.WithPretty(true)).ForOperation(component, operation)
}

// cliSink reports progress to stderr as text lines, so stdout stays clean
// JSON a caller can pipe.
func cliSink() progress.Sink {
	if !verbose {
		return nil
	}
	return progress.Text{W: os.Stderr}
}
