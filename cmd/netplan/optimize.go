package main

import (
	"github.com/spf13/cobra"

	"github.com/zumanm1/ospf-netplan/optimize"
	"github.com/zumanm1/ospf-netplan/traffic"
)

var (
	optimizeTopologyPath       string
	optimizeMatrixPath         string
	optimizeModel              string
	optimizeBaseMbps           float64
	optimizeGoal               string
	optimizeMaxCostChangePct   float64
	optimizeMaxChangesCount    int
	optimizeProtectedLogicalID []string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "run a bounded greedy local search over edge costs to relieve congestion",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger("optimize", "optimize")
		snap, err := loadTopology(optimizeTopologyPath)
		if err != nil {
			return err
		}

		var matrix traffic.Matrix
		if optimizeMatrixPath != "" {
			matrix, err = loadMatrix(optimizeMatrixPath)
		} else {
			matrix, err = traffic.SyntheticMatrix(snap, traffic.Model(optimizeModel), traffic.SyntheticOptions{BaseMbps: optimizeBaseMbps})
		}
		if err != nil {
			return err
		}

		protected := make(map[string]bool, len(optimizeProtectedLogicalID))
		for _, id := range optimizeProtectedLogicalID {
			protected[id] = true
		}
		constraints := optimize.Constraints{
			MaxCostChangePercent: optimizeMaxCostChangePct,
			MaxChangesCount:      optimizeMaxChangesCount,
			ProtectedEdges:       protected,
		}

		result, err := optimize.Optimize(cmd.Context(), snap, matrix, optimize.Goal(optimizeGoal), constraints, nil, cliSink())
		if err != nil {
			return err
		}
		log.Debug().Int("iterations", result.Iterations).Int("changes", len(result.Changes)).Bool("converged", result.Converged).Msg("optimize finished")
		return printResult(result)
	},
}

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeTopologyPath, "topology", "t", "", "topology document (JSON or YAML)")
	optimizeCmd.Flags().StringVar(&optimizeMatrixPath, "matrix", "", "traffic matrix file (JSON array of source/target/demand_mbps); omit to synthesize one")
	optimizeCmd.Flags().StringVar(&optimizeModel, "synthetic-model", "uniform", "synthetic matrix model when --matrix is omitted (uniform, population, distance)")
	optimizeCmd.Flags().Float64Var(&optimizeBaseMbps, "base-mbps", 100, "base demand for the synthetic matrix")
	optimizeCmd.Flags().StringVar(&optimizeGoal, "goal", "balance", "objective to minimize (balance, latency, diversity)")
	optimizeCmd.Flags().Float64Var(&optimizeMaxCostChangePct, "max-cost-change-percent", 0, "bound on |new-old|/old per accepted edit (0 = package default)")
	optimizeCmd.Flags().IntVar(&optimizeMaxChangesCount, "max-changes", 0, "cap on accepted edits (0 = unlimited)")
	optimizeCmd.Flags().StringSliceVar(&optimizeProtectedLogicalID, "protect", nil, "logical_ids that must not change")
	optimizeCmd.MarkFlagRequired("topology")
}
