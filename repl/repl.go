// Copyright © 2025 The Tanuki authors

package repl

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"github.com/mattn/go-isatty"

	"github.com/tanukilang/tanuki/hostfn"
	"github.com/tanukilang/tanuki/hostfn/funclib"
	"github.com/tanukilang/tanuki/token"
)

type config struct {
	stdin  io.ReadCloser
	stderr io.WriteCloser
}

func newConfig(opts ...Option) *config {
	config := &config{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

type Option func(*config)

// WithStdin allows overriding the input to the console.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStderr allows overriding the output of the console.
func WithStderr(stderr io.WriteCloser) Option {
	return func(c *config) {
		c.stderr = stderr
	}
}

// Run starts a console in a vanilla runtime with the standard function
// library loaded.
func Run(prompt string, opts ...Option) {
	rt := hostfn.StandardRuntime()
	if err := funclib.LoadLibrary(rt.Registry); err != nil {
		errlnf("Library initialization failure: %v", err)
		os.Exit(1)
	}
	RunEnv(hostfn.NewEnv(rt), prompt, opts...)
}

// RunEnv starts a console invoking functions registered with env's runtime.
// Each input line is parsed as one call and its result printed.
func RunEnv(env *hostfn.Env, prompt string, opts ...Option) {
	cfg := newConfig(opts...)
	if cfg.stderr != nil {
		env.Runtime.Stderr = cfg.stderr
	}

	rlCfg := &readline.Config{
		Stdout:            env.Runtime.Stderr,
		Stderr:            env.Runtime.Stderr,
		Prompt:            renderPrompt(prompt, env.Runtime.Stderr),
		HistoryFile:       historyPath(),
		HistorySearchFold: true,
		AutoComplete:      &functionCompleter{env: env},
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	ensureHistoryFilePermissions(rlCfg.HistoryFile)
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		panic(err)
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	lineno := 0
	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			break
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		lineno++
		call, err := ParseCall(line)
		if err != nil {
			fmt.Fprintln(env.Runtime.Stderr, err) //nolint:errcheck // best-effort error display
			continue
		}
		fun := env.Runtime.Registry.Lookup(call.Fn())
		if fun == nil {
			fmt.Fprintf(env.Runtime.Stderr, "unbound function: %v\n", call.Fn()) //nolint:errcheck // best-effort error display
			continue
		}
		loc := &token.Location{File: "stdin", Line: lineno, Col: 1}
		v, err := fun.Invoke(env, loc, call.Args(fun))
		if err != nil {
			fmt.Fprintln(env.Runtime.Stderr, err) //nolint:errcheck // best-effort error display
			continue
		}
		fmt.Fprintln(env.Runtime.Stderr, formatValue(v)) //nolint:errcheck // best-effort console output
	}
}

func formatValue(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprint(v)
}

// renderPrompt colors the prompt when the console's output writer is an
// interactive terminal.
func renderPrompt(prompt string, out io.Writer) string {
	f, ok := out.(*os.File)
	if !ok {
		return prompt
	}
	fd := f.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return "\x1b[36m" + prompt + "\x1b[0m"
	}
	return prompt
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tanuki_history")
}

// ensureHistoryFilePermissions keeps readline history private to the user.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE, 0600)
	if err != nil {
		return
	}
	f.Close() //nolint:errcheck // file is not written here
	_ = os.Chmod(path, 0600)
}

func errlnf(format string, v ...interface{}) {
	if strings.HasSuffix(format, "\n") {
		errf(format, v...)
		return
	}
	errf(format+"\n", v...)
}

func errf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
}
