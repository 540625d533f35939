// Copyright © 2025 The Tanuki authors

// Package docs embeds the Tanuki reference guide for use by the CLI.
package docs

import _ "embed"

//go:embed guide.md
var Guide string
