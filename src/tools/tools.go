//go:build tools

// Package tools imports the programs used by `go generate` and during
// development so that `go mod` keeps them in go.mod. Nothing built imports it.
package tools

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
