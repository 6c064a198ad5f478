// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the nbtranslate CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/nbtranslate/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the nbtranslate CLI.
var rootCmd = &cobra.Command{
	Use:   "nbtranslate",
	Short: "Produce Chinese copies of Jupyter notebooks with a phrase table",
	Long: `nbtranslate walks a directory tree, finds Jupyter notebooks, and writes a
sibling copy of each (0.0_Welcome.ipynb -> 0.0_Welcome_cn.ipynb) whose markdown
cells were passed through a fixed phrase-substitution table. Code fences and
lines containing URLs are left untouched. Code cells and notebook metadata are
copied as-is.

Notebooks whose translated copy already exists are skipped, so a run can be
repeated safely after adding new notebooks.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./nbtranslate.yaml or ~/.config/nbtranslate/nbtranslate.yaml)")
	rootCmd.PersistentFlags().String("root", types.DefaultRootDir, "directory tree to scan")
	rootCmd.PersistentFlags().String("marker", types.DefaultMarker, "token inserted before the extension of translated copies")
	rootCmd.PersistentFlags().String("extension", types.DefaultExtension, "file extension of notebooks to translate")
	rootCmd.PersistentFlags().StringSlice("exclude", nil, "extra directory path tokens to skip (\"translated\" is always skipped)")
	rootCmd.PersistentFlags().String("phrases", "", "YAML or TOML phrase file replacing the built-in table")

	mustBind("root_dir", rootCmd.PersistentFlags().Lookup("root"))
	mustBind("marker", rootCmd.PersistentFlags().Lookup("marker"))
	mustBind("extension", rootCmd.PersistentFlags().Lookup("extension"))
	mustBind("exclude", rootCmd.PersistentFlags().Lookup("exclude"))
	mustBind("phrases_file", rootCmd.PersistentFlags().Lookup("phrases"))
}

func initConfig() {
	// .env never overrides variables that are already set.
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment from .env")
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("nbtranslate")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "nbtranslate"))
		}
	}

	viper.SetEnvPrefix("NBTRANSLATE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
