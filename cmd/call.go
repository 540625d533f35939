// Copyright © 2025 The Tanuki authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tanukilang/tanuki/repl"
	"github.com/tanukilang/tanuki/token"
)

// callCmd represents the call command
var callCmd = &cobra.Command{
	Use:   "call CALL...",
	Short: "Invoke functions once from the command line",
	Long: `Invoke registered functions without starting a console.  Each
argument is one call in the console grammar:

  tanuki call 'string:uppercase "hi"'
  tanuki call 'math:pow 2.0 10.0' 'seq:range 0 5'
  tanuki call 'string:truncate "hello world" 5 suffix="~"'

Results are printed to stdout, one per call.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := callLines(&cmdConfig{}, args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// CallCommand builds a call command operating on an embedder-configured
// environment.
func CallCommand(opts ...Option) *cobra.Command {
	cfg := &cmdConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	cmd := *callCmd
	cmd.Run = func(_ *cobra.Command, args []string) {
		if err := callLines(cfg, args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	return &cmd
}

func callLines(cfg *cmdConfig, lines []string) error {
	env, err := cfg.resolveEnv()
	if err != nil {
		return err
	}
	for i, line := range lines {
		call, err := repl.ParseCall([]byte(line))
		if err != nil {
			return err
		}
		fun := env.Runtime.Registry.Lookup(call.Fn())
		if fun == nil {
			return fmt.Errorf("unbound function: %v", call.Fn())
		}
		loc := &token.Location{File: "argv", Line: i + 1, Col: 1}
		v, err := fun.Invoke(env, loc, call.Args(fun))
		if err != nil {
			return err
		}
		if v == nil {
			fmt.Println("nil")
			continue
		}
		fmt.Println(v)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(callCmd)
}
