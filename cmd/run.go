// Copyright © 2025 The Tanuki authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tanukilang/tanuki/callfile"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run FILE...",
	Short: "Run call files",
	Long: `Run YAML call files against the standard function library.

A call file holds a list of calls, each naming a function with positional
and named arguments. Calls may declare an expected result which is checked
after the call returns:

  calls:
    - fn: string:uppercase
      args: [hello]
      want: HELLO
    - fn: string:truncate
      args: [hello world, 5]
      named:
        suffix: "~"
      want: hello~

The run stops at the first failing call.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFiles(args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// RunCommand builds a run command operating on an embedder-configured
// environment.
func RunCommand(opts ...Option) *cobra.Command {
	cfg := &cmdConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	cmd := *runCmd
	cmd.Run = func(_ *cobra.Command, args []string) {
		if err := runFilesEnv(cfg, args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	return &cmd
}

func runFiles(paths []string) error {
	return runFilesEnv(&cmdConfig{}, paths)
}

func runFilesEnv(cfg *cmdConfig, paths []string) error {
	env, err := cfg.resolveEnv()
	if err != nil {
		return err
	}
	for _, path := range paths {
		script, err := callfile.Load(path)
		if err != nil {
			return err
		}
		if err := script.Run(env); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
