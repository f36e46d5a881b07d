package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zumanm1/ospf-netplan/traffic"
)

var (
	utilizationTopologyPath string
	utilizationMatrixPath   string
	utilizationModel        string
	utilizationBaseMbps     float64
)

// matrixEntry is the CLI's flat wire shape for a traffic.Matrix file: a
// JSON array of (src, dst, demand_mbps) triples, since traffic.Matrix's
// struct-keyed map has no natural JSON object form.
type matrixEntry struct {
	Source    string  `json:"source"`
	Target    string  `json:"target"`
	DemandMbps float64 `json:"demand_mbps"`
}

func loadMatrix(path string) (traffic.Matrix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("netplan: read %s: %w", path, err)
	}
	var entries []matrixEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("netplan: parse matrix %s: %w", path, err)
	}
	matrix := make(traffic.Matrix, len(entries))
	for _, e := range entries {
		matrix.Set(e.Source, e.Target, e.DemandMbps)
	}
	return matrix, nil
}

var utilizationCmd = &cobra.Command{
	Use:   "utilization",
	Short: "compute per-edge utilization for a traffic matrix over the topology",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger("traffic", "utilization")
		snap, err := loadTopology(utilizationTopologyPath)
		if err != nil {
			return err
		}

		var matrix traffic.Matrix
		if utilizationMatrixPath != "" {
			matrix, err = loadMatrix(utilizationMatrixPath)
		} else {
			matrix, err = traffic.SyntheticMatrix(snap, traffic.Model(utilizationModel), traffic.SyntheticOptions{BaseMbps: utilizationBaseMbps})
		}
		if err != nil {
			return err
		}

		report, err := traffic.UtilizationWithConfig(cmd.Context(), snap, matrix, cfg, cliSink())
		if err != nil {
			return err
		}
		log.Debug().Float64("max_utilization", report.MaxUtilization).Msg("utilization computed")
		return printResult(report)
	},
}

func init() {
	utilizationCmd.Flags().StringVarP(&utilizationTopologyPath, "topology", "t", "", "topology document (JSON or YAML)")
	utilizationCmd.Flags().StringVar(&utilizationMatrixPath, "matrix", "", "traffic matrix file (JSON array of source/target/demand_mbps); omit to synthesize one")
	utilizationCmd.Flags().StringVar(&utilizationModel, "synthetic-model", "uniform", "synthetic matrix model when --matrix is omitted (uniform, population, distance)")
	utilizationCmd.Flags().Float64Var(&utilizationBaseMbps, "base-mbps", 100, "base demand for the synthetic matrix")
	utilizationCmd.MarkFlagRequired("topology")
}
