package main

import (
	"github.com/spf13/cobra"

	"github.com/zumanm1/ospf-netplan/impact"
)

var (
	impactBaselinePath  string
	impactCandidatePath string
)

var impactCmd = &cobra.Command{
	Use:   "impact",
	Short: "diff all-pairs routing between a baseline and a candidate topology",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger("impact", "analyze_impact")
		baseline, err := loadTopology(impactBaselinePath)
		if err != nil {
			return err
		}
		candidate, err := loadTopology(impactCandidatePath)
		if err != nil {
			return err
		}
		report, err := impact.AnalyzeImpact(cmd.Context(), baseline, candidate, nil, cliSink())
		if err != nil {
			return err
		}
		log.Info().Int("records", len(report.Records)).Msg("impact analyzed")
		return printResult(report)
	},
}

func init() {
	impactCmd.Flags().StringVar(&impactBaselinePath, "baseline", "", "baseline topology document")
	impactCmd.Flags().StringVar(&impactCandidatePath, "candidate", "", "candidate topology document")
	impactCmd.MarkFlagRequired("baseline")
	impactCmd.MarkFlagRequired("candidate")
}
