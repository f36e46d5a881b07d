// Command netplan is a CLI front end over the OSPF network-planning
// engine: it loads a topology document and runs one analysis (route,
// impact, connectivity, spof, resilience, utilization, optimize,
// blast-radius) or manages saved scenarios.
//
// Grounded on jhkimqd-chaos-utils/cmd/chaos-runner's cobra root-command
// shape (persistent config/verbose flags, one file per subcommand) and
// inference-sim-inference-sim/main.go's thin main() that only calls
// rootCmd.Execute().
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
