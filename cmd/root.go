// Package cmd implements the nxtool command-line front-end for the nx
// archive reader.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	verbose bool
	workers int
)

var rootCmd = &cobra.Command{
	Use:   "nxtool",
	Short: "Inspect and extract resources from NX archives",
	Long: `nxtool is a read-only command-line tool for NX archives, the
packaged asset format used by NoLifeNx-compatible clients.

Commands:
  dump            Walk and print a subtree
  get             Print one node's scalar value
  extract-bitmap  Decode one bitmap to a raw RGBA/BGRA file
  extract-audio   Dump one audio blob
  decode-all      Concurrently decode every bitmap under a subtree`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "decompression worker count (0 = use config/default)")

	cobra.OnInitialize(initConfig)
}

// initConfig loads optional defaults from nxtool.yaml or NXTOOL_*
// environment variables, following the same SetConfigName/AddConfigPath/
// SetEnvPrefix shape the go-apfs reference uses for its own config file.
// A missing config file is not an error.
func initConfig() {
	viper.SetConfigName("nxtool")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.nxtool")
	viper.AddConfigPath("/etc/nxtool")

	viper.SetDefault("workers", 4)
	viper.SetDefault("output_dir", ".")

	viper.SetEnvPrefix("NXTOOL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			fmt.Fprintf(os.Stderr, "nxtool: reading config: %v\n", err)
		}
	}

	if workers == 0 {
		workers = viper.GetInt("workers")
	}
}
