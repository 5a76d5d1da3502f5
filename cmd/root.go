package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/updatewatch/updatewatch/internal"
	"github.com/updatewatch/updatewatch/internal/log"
	"github.com/updatewatch/updatewatch/updatewatch"
	"github.com/updatewatch/updatewatch/updatewatch/advisory"
	"github.com/updatewatch/updatewatch/updatewatch/presenter"
	"github.com/updatewatch/updatewatch/updatewatch/presenter/models"
)

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s INSTALLED AVAILABLE", internal.ApplicationName),
	Short: "Decide whether and how strongly a user should be prompted to upgrade",
	Long: `Compares an installed version against an available (published) version and
derives an upgrade-prompt severity from the configured policy:

    updatewatch 2.1.0 2.4.0                      evaluate under the configured thresholds
    updatewatch --preset relaxed 2.1.0 2.4.0     use a named static policy instead
    updatewatch -o json 2.1.0 2.4.0              emit the decision as JSON
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runDefaultCmd(cmd, args))
	},
}

func init() {
	// output & formatting options
	flag := "output"
	rootCmd.Flags().StringP(
		flag, "o", presenter.TablePresenter.String(),
		fmt.Sprintf("decision output formatter, options=%v", presenter.Options),
	)
	if err := viper.BindPFlag(flag, rootCmd.Flags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}

	// policy options
	flag = "preset"
	rootCmd.Flags().String(
		flag, "",
		fmt.Sprintf("static policy preset (overrides threshold options), options=%v", advisory.PresetNames()),
	)
	if err := viper.BindPFlag("policy.preset", rootCmd.Flags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}

	flag = "frequency"
	rootCmd.Flags().String(
		flag, "daily",
		fmt.Sprintf("how often the caller should re-run the check, options=%v", advisory.Frequencies),
	)
	if err := viper.BindPFlag("policy.frequency", rootCmd.Flags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}

	flag = "voluntary-gap"
	rootCmd.Flags().Int(flag, 2, "minor-version distance at which an upgrade becomes optionally suggested")
	if err := viper.BindPFlag("policy.voluntary-gap", rootCmd.Flags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}

	flag = "involuntary-gap"
	rootCmd.Flags().Int(flag, 5, "minor-version distance at which an upgrade becomes mandatory")
	if err := viper.BindPFlag("policy.involuntary-gap", rootCmd.Flags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}

	flag = "major-involuntary-gap"
	rootCmd.Flags().Int(flag, 3, "minor-version maturity of the next major line that makes the jump mandatory")
	if err := viper.BindPFlag("policy.major-involuntary-gap", rootCmd.Flags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}
}

func runDefaultCmd(_ *cobra.Command, args []string) int {
	if appConfig.Dev.ProfileCPU {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	installed, available := args[0], args[1]

	presenterType := presenter.ParseOption(appConfig.Output)
	if presenterType == presenter.UnknownPresenter {
		log.Errorf("cannot find an output presenter for option: %s", appConfig.Output)
		return 1
	}

	log.Infof("evaluating upgrade prompt (installed=%q available=%q)", installed, available)

	decision := updatewatch.Advise(appConfig.Policy.PolicyOpt, installed, available)

	log.Infof("decision: severity=%s frequency=%s", decision.Severity, decision.Frequency)

	document := models.NewDocument(installed, available, decision)
	if err := presenter.GetPresenter(presenterType, document).Present(os.Stdout); err != nil {
		log.Errorf("could not format decision: %+v", err)
		return 1
	}

	return 0
}
