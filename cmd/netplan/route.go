package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zumanm1/ospf-netplan/spf"
)

var (
	routeTopologyPath string
	routeSource       string
	routeDestination  string
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "compute the shortest path between two routers",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger("spf", "route")
		snap, err := loadTopology(routeTopologyPath)
		if err != nil {
			return err
		}
		table, err := spf.ShortestPaths(snap, routeSource)
		if err != nil {
			return fmt.Errorf("netplan route: %w", err)
		}
		result, ok := table.Reconstruct(routeDestination)
		if !ok {
			return fmt.Errorf("netplan route: %s is unreachable from %s", routeDestination, routeSource)
		}
		log.Debug().Int("cost", result.Cost).Bool("ecmp", result.IsECMP).Msg("route computed")
		return printResult(result)
	},
}

func init() {
	routeCmd.Flags().StringVarP(&routeTopologyPath, "topology", "t", "", "topology document (JSON or YAML)")
	routeCmd.Flags().StringVar(&routeSource, "src", "", "source router ID")
	routeCmd.Flags().StringVar(&routeDestination, "dst", "", "destination router ID")
	routeCmd.MarkFlagRequired("topology")
	routeCmd.MarkFlagRequired("src")
	routeCmd.MarkFlagRequired("dst")
}
