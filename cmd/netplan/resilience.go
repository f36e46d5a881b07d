package main

import (
	"github.com/spf13/cobra"

	"github.com/zumanm1/ospf-netplan/resilience"
)

var resilienceTopologyPath string

var resilienceCmd = &cobra.Command{
	Use:   "resilience",
	Short: "score the topology's redundancy, diversity, and capacity headroom",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger("resilience", "compute_score")
		snap, err := loadTopology(resilienceTopologyPath)
		if err != nil {
			return err
		}
		spofs, err := resilience.EnumerateSPOFs(cmd.Context(), snap, cliSink())
		if err != nil {
			return err
		}
		score := resilience.ComputeScore(snap, spofs, cfg.ResilienceWeights)
		log.Debug().Float64("overall", score.Overall).Str("level", score.Level).Msg("resilience scored")
		return printResult(score)
	},
}

func init() {
	resilienceCmd.Flags().StringVarP(&resilienceTopologyPath, "topology", "t", "", "topology document (JSON or YAML)")
	resilienceCmd.MarkFlagRequired("topology")
}
