// Copyright © 2025 The Tanuki authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tanuki",
	Short: "Tanuki — host function binding and dispatch runtime",
	Long: `Tanuki binds host functions into a callable registry and dispatches
calls against them. The standalone CLI exposes the standard function
library for exploration, scripted runs, and interactive use.

Getting started:
  tanuki call 'string:uppercase "hi"'   Invoke a function once
  tanuki run calls.yaml                 Run a call file
  tanuki repl                           Start an interactive console
  tanuki doc string:truncate            Show documentation for a function
  tanuki doc -p math                    List a package's functions
  tanuki doc -l                         List all loaded packages

Standard library packages (qualified names, pkg:name):
  string    String manipulation (uppercase, split, join, truncate, ...)
  math      Numeric helpers (abs, pow, min, max, clamp, ...)
  seq       Sequence operations (list, len, nth, reverse, range, ...)
  time      Clock access and timed futures
  debug     Tracing and error helpers

More information:
  Source code:     https://github.com/tanukilang/tanuki`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tanuki.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".tanuki" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".tanuki")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
