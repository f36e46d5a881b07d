package main

import (
	"github.com/spf13/cobra"

	"github.com/zumanm1/ospf-netplan/blastradius"
	"github.com/zumanm1/ospf-netplan/impact"
)

var (
	blastRadiusBaselinePath  string
	blastRadiusCandidatePath string
)

var blastRadiusCmd = &cobra.Command{
	Use:   "blast-radius",
	Short: "score the risk of rolling out a candidate topology over a baseline",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger("blastradius", "analyze")
		baseline, err := loadTopology(blastRadiusBaselinePath)
		if err != nil {
			return err
		}
		candidate, err := loadTopology(blastRadiusCandidatePath)
		if err != nil {
			return err
		}
		impactReport, err := impact.AnalyzeImpact(cmd.Context(), baseline, candidate, nil, cliSink())
		if err != nil {
			return err
		}
		report := blastradius.Analyze(impactReport, baseline, candidate)
		log.Debug().Float64("risk_score", report.RiskScore).Str("level", string(report.Level)).Msg("blast radius scored")
		return printResult(report)
	},
}

func init() {
	blastRadiusCmd.Flags().StringVar(&blastRadiusBaselinePath, "baseline", "", "baseline topology document")
	blastRadiusCmd.Flags().StringVar(&blastRadiusCandidatePath, "candidate", "", "candidate topology document")
	blastRadiusCmd.MarkFlagRequired("baseline")
	blastRadiusCmd.MarkFlagRequired("candidate")
}
