package main

import (
	"github.com/spf13/cobra"

	"github.com/zumanm1/ospf-netplan/connectivity"
)

var connectivityTopologyPath string

var connectivityCmd = &cobra.Command{
	Use:   "connectivity",
	Short: "report connected components and isolated routers",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger("connectivity", "analyze")
		snap, err := loadTopology(connectivityTopologyPath)
		if err != nil {
			return err
		}
		report := connectivity.Analyze(snap)
		log.Debug().Int("components", len(report.Components)).Msg("connectivity analyzed")
		return printResult(report)
	},
}

func init() {
	connectivityCmd.Flags().StringVarP(&connectivityTopologyPath, "topology", "t", "", "topology document (JSON or YAML)")
	connectivityCmd.MarkFlagRequired("topology")
}
