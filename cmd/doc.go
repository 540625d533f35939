// Copyright © 2025 The Tanuki authors

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/tanukilang/tanuki/docs"
	"github.com/tanukilang/tanuki/hostfn"
)

var docPackage bool
var docListPackages bool
var docGuide bool

// docCmd represents the doc command
var docCmd = &cobra.Command{
	Use:   "doc [flags] QUERY",
	Short: "Show documentation for registered functions and packages",
	Long: `Show built-in documentation for registered host functions.

By default, looks up a function by its qualified name. Use -p to list all
functions in a package. Use -l to list all loaded packages.

Documentation is generated from doc strings supplied at function
registration. All standard library functions have documentation.

Examples:
  tanuki doc string:truncate       Show docs for one function
  tanuki doc -p math               List all functions in the math package
  tanuki doc -l                    List all loaded packages`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := docRun(&cmdConfig{}, cmd, args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// DocCommand builds a doc command operating on an embedder-configured
// environment.
func DocCommand(opts ...Option) *cobra.Command {
	cfg := &cmdConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	cmd := *docCmd
	cmd.Run = func(c *cobra.Command, args []string) {
		if err := docRun(cfg, c, args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	return &cmd
}

func docRun(cfg *cmdConfig, cmd *cobra.Command, args []string) error {
	env, err := cfg.resolveEnv()
	if err != nil {
		return err
	}
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush() //nolint:errcheck // best-effort flush on exit
	if docGuide {
		_, err := fmt.Fprintln(out, docs.Guide)
		return err
	}
	if docListPackages {
		return renderPackageList(out, env)
	}
	if len(args) != 1 {
		_ = cmd.Help()
		os.Exit(1)
	}
	if docPackage {
		return renderPackage(out, env, args[0])
	}
	return renderFun(out, env, args[0])
}

// renderPackageList writes a summary of all loaded packages to w.  Each
// package is listed with its function count.  Packages are sorted
// alphabetically.
func renderPackageList(w io.Writer, env *hostfn.Env) error {
	counts := make(map[string]int)
	for _, name := range env.Runtime.Registry.Names() {
		counts[funPackage(name)]++
	}
	pkgs := make([]string, 0, len(counts))
	for pkg := range counts {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	for _, pkg := range pkgs {
		if _, err := fmt.Fprintf(w, "  %-12s (%d functions)\n", pkg, counts[pkg]); err != nil {
			return err
		}
	}
	return nil
}

// renderPackage writes to w formatted documentation for every function in
// the query package.
func renderPackage(w io.Writer, env *hostfn.Env, query string) error {
	var found bool
	for _, name := range env.Runtime.Registry.Names() {
		if funPackage(name) != query {
			continue
		}
		if found {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		found = true
		if err := renderFun(w, env, name); err != nil {
			return err
		}
	}
	if !found {
		return fmt.Errorf("no package: %q", query)
	}
	return nil
}

// renderFun writes to w formatted documentation for one registered
// function.  The exact formatting of the rendered documentation is subject
// to change across versions.
func renderFun(w io.Writer, env *hostfn.Env, name string) error {
	fun := env.Runtime.Registry.Lookup(name)
	if fun == nil {
		return fmt.Errorf("no function: %q", name)
	}
	if _, err := fmt.Fprintln(w, signatureString(fun)); err != nil {
		return err
	}
	if doc := cleanDocstring(fun.Doc()); doc != "" {
		if _, err := fmt.Fprintln(w, doc); err != nil {
			return err
		}
	}
	return nil
}

// signatureString renders a function's caller-facing signature.  Optional
// parameters appear in brackets, a variadic tail is marked with an
// ellipsis, and a block parameter appears in braces.
func signatureString(fun *hostfn.BoundFunction) string {
	sig := fun.Signature()
	parts := []string{fun.Name()}
	for i := 0; i < sig.DeclaredParameterCount(); i++ {
		p := sig.Param(i)
		switch {
		case p.Type == hostfn.TContext || p.Type == hostfn.TSpan:
		case p.Type == hostfn.TBlock:
			parts = append(parts, "{"+p.Name+"}")
		case p.Rest:
			parts = append(parts, p.Name+"...")
		case p.Optional:
			parts = append(parts, "["+p.Name+"]")
		default:
			parts = append(parts, p.Name)
		}
	}
	s := strings.Join(parts, " ")
	if sig.Awaitable() {
		s += "  (async)"
	}
	return s
}

func cleanDocstring(doc string) string {
	if doc == "" {
		return ""
	}
	doc = indent.String(wordwrap.String(doc, 72), 2)
	return strings.TrimSuffix(doc, "\n")
}

func funPackage(name string) string {
	if i := strings.Index(name, ":"); i > 0 {
		return name[:i]
	}
	return name
}

func init() {
	rootCmd.AddCommand(docCmd)

	// Here flags for the doc command are defined
	docCmd.Flags().BoolVarP(&docPackage, "package", "p", false,
		"Interpret the argument as a package name.")
	docCmd.Flags().BoolVarP(&docListPackages, "list-packages", "l", false,
		"List all packages loaded in the runtime.")
	docCmd.Flags().BoolVarP(&docGuide, "guide", "g", false,
		"Print the calling convention guide.")
}
