package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/nbtranslate/internal/phrase"
	"github.com/pdiddy/nbtranslate/pkg/types"
)

func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

// translateConfig assembles the run configuration from viper (flags, env,
// config file). A positional root argument overrides every other source.
func translateConfig(args []string) types.TranslateConfig {
	cfg := types.TranslateConfig{
		ScanConfig: types.ScanConfig{
			Extension: viper.GetString("extension"),
			Marker:    viper.GetString("marker"),
			Exclude:   viper.GetStringSlice("exclude"),
		},
		RootDir:     viper.GetString("root_dir"),
		ReportFile:  viper.GetString("report_file"),
		PhrasesFile: viper.GetString("phrases_file"),
	}
	if len(args) > 0 {
		cfg.RootDir = args[0]
	}
	return cfg.WithDefaults()
}

// phraseTable returns the table from path, or the built-in table when path
// is empty.
func phraseTable(path string) (*phrase.Table, error) {
	if path == "" {
		return phrase.Default(), nil
	}
	return phrase.Load(path)
}
