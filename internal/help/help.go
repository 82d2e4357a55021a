// Package help holds the user guide shared by the terminal and web front ends.
package help

import (
	_ "embed"
	"strings"

	"termsim/internal/model"
)

//go:embed help.md
var helpMD string

// Markdown returns the guide with the version filled in.
func Markdown() string {
	return strings.ReplaceAll(helpMD, "{{VERSION}}", model.Version)
}
