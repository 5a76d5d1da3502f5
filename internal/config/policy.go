package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/updatewatch/updatewatch/updatewatch/advisory"
)

// policy contains the upgrade-prompt policy options available to the user via
// the application config. A named preset takes precedence over the threshold
// options.
type policy struct {
	Preset              string `yaml:"preset" json:"preset" mapstructure:"preset"`                                              // --preset, a named static policy (fixed severity + frequency)
	Frequency           string `yaml:"frequency" json:"frequency" mapstructure:"frequency"`                                     // --frequency, how often the caller should re-run the check
	VoluntaryGap        int    `yaml:"voluntary-gap" json:"voluntary-gap" mapstructure:"voluntary-gap"`                         // --voluntary-gap, minor-version distance for an optional prompt
	InvoluntaryGap      int    `yaml:"involuntary-gap" json:"involuntary-gap" mapstructure:"involuntary-gap"`                   // --involuntary-gap, minor-version distance for a forced prompt
	MajorInvoluntaryGap int    `yaml:"major-involuntary-gap" json:"major-involuntary-gap" mapstructure:"major-involuntary-gap"` // --major-involuntary-gap, minor-version maturity of the next major line that forces the jump

	PolicyOpt advisory.Policy `yaml:"-" json:"-"`
}

func (cfg policy) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("policy.preset", "")
	v.SetDefault("policy.frequency", "daily")
	v.SetDefault("policy.voluntary-gap", 2)
	v.SetDefault("policy.involuntary-gap", 5)
	v.SetDefault("policy.major-involuntary-gap", 3)
}

func (cfg *policy) parseConfigValues() error {
	if cfg.Preset != "" {
		policyOpt, err := advisory.ParsePreset(cfg.Preset)
		if err != nil {
			return fmt.Errorf("bad policy preset value '%s': %w", cfg.Preset, err)
		}
		cfg.PolicyOpt = policyOpt
		return nil
	}

	frequency := advisory.ParseFrequency(cfg.Frequency)
	if frequency == advisory.UnknownFrequency {
		return fmt.Errorf("bad policy frequency value '%s'", cfg.Frequency)
	}

	policyOpt, err := advisory.NewConditionalPolicy(frequency, cfg.VoluntaryGap, cfg.InvoluntaryGap, cfg.MajorInvoluntaryGap)
	if err != nil {
		return fmt.Errorf("bad policy threshold values: %w", err)
	}
	cfg.PolicyOpt = policyOpt

	return nil
}
