// Copyright © 2025 The Tanuki authors

package main

import "github.com/tanukilang/tanuki/cmd"

func main() {
	cmd.Execute()
}
