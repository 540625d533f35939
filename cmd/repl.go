// Copyright © 2025 The Tanuki authors

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tanukilang/tanuki/repl"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive function console",
	Long: `Start an interactive console for calling registered functions.

The standard function library is loaded automatically. Line editing and
in-session command history are supported via readline. Use Ctrl-D or
Ctrl-C to exit.

Example session:
  tanuki> string:uppercase "hi"
  HI
  tanuki> math:pow 2.0 10.0
  1024
  tanuki> string:truncate "hello world" 5 suffix="~"
  hello~
  tanuki> seq:range 0 5
  [0 1 2 3 4]`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.Run(filepath.Base(os.Args[0]) + "> ")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
