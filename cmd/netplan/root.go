package main

import (
	"github.com/spf13/cobra"

	"github.com/zumanm1/ospf-netplan/internal/netconfig"
)

var (
	cfgFile    string
	verbose    bool
	jsonOutput bool
	version    = "dev"
	cfg        netconfig.Config
)

var rootCmd = &cobra.Command{
	Use:     "netplan",
	Short:   "OSPF network-planning and what-if analysis engine",
	Long:    `netplan runs shortest-path, impact, connectivity, resilience, traffic, optimization, and blast-radius analyses over an OSPF-style topology document.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := netconfig.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "netplan.yaml", "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", true, "emit machine-readable JSON output")

	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(impactCmd)
	rootCmd.AddCommand(connectivityCmd)
	rootCmd.AddCommand(spofCmd)
	rootCmd.AddCommand(resilienceCmd)
	rootCmd.AddCommand(utilizationCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(blastRadiusCmd)
	rootCmd.AddCommand(scenarioCmd)
}
