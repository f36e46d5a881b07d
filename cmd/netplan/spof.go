package main

import (
	"github.com/spf13/cobra"

	"github.com/zumanm1/ospf-netplan/resilience"
)

var (
	spofTopologyPath string
	spofTopK         int
)

var spofCmd = &cobra.Command{
	Use:   "spof",
	Short: "enumerate single points of failure by simulated node/link removal",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger("resilience", "enumerate_spofs")
		snap, err := loadTopology(spofTopologyPath)
		if err != nil {
			return err
		}
		spofs, err := resilience.EnumerateSPOFs(cmd.Context(), snap, cliSink())
		if err != nil {
			return err
		}
		if spofTopK > 0 {
			spofs = resilience.TopK(spofs, spofTopK)
		}
		log.Debug().Int("count", len(spofs)).Msg("spofs enumerated")
		return printResult(spofs)
	},
}

func init() {
	spofCmd.Flags().StringVarP(&spofTopologyPath, "topology", "t", "", "topology document (JSON or YAML)")
	spofCmd.Flags().IntVar(&spofTopK, "top", 0, "limit output to the top K most severe SPOFs (0 = all)")
	spofCmd.MarkFlagRequired("topology")
}
