package cmd

import (
	"fmt"
	"os"

	"cpufetch/cpu"
	"cpufetch/reporting"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

var (
	showFrequency bool
	showCache     bool
	showFeatures  bool
	jsonOutput    bool
	noLogo        bool
	noColor       bool
	debug         bool
)

var rootCmd = &cobra.Command{
	Use:           "cpufetch",
	Short:         "cpufetch displays information about the host CPU",
	Version:       fmt.Sprintf("%s, commit %s, built at %s by %s", version, commit, date, builtBy),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if debug {
			log.SetLevel(log.DebugLevel)
		}

		info, err := cpu.Get()
		if err != nil {
			return err
		}

		report := reporting.NewReport(info)

		if jsonOutput {
			return report.PrintJson(noColor)
		}

		report.Print(reporting.Options{
			ShowFrequency: showFrequency,
			ShowCache:     showCache,
			ShowFeatures:  showFeatures,
			NoLogo:        noLogo,
			NoColor:       noColor,
		})
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&showFrequency, "frequency", "f", false, "show CPU frequency information")
	rootCmd.Flags().BoolVarP(&showCache, "cache", "c", false, "show CPU cache information")
	rootCmd.Flags().BoolVar(&showFeatures, "features", false, "show CPU feature flags")
	rootCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "output in JSON format")
	rootCmd.Flags().BoolVar(&noLogo, "no-logo", false, "don't show the CPU logo")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "don't use color in the output")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "show debug information")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
