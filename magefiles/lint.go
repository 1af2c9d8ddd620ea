//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/magefile/mage/sh"
)

const (
	binGofmt = "gofmt"
	binLint  = "golangci-lint"
)

// lintDirs are the source trees checked for gofmt drift.
var lintDirs = []string{"cmd", "internal", "pkg", "tests", "magefiles"}

// Lint fails on files gofmt would rewrite, then runs golangci-lint.
func Lint() error {
	out, err := sh.Output(binGofmt, append([]string{"-l"}, lintDirs...)...)
	if err != nil {
		return err
	}
	if out = strings.TrimSpace(out); out != "" {
		return fmt.Errorf("gofmt needed on:\n%s", out)
	}
	return sh.RunV(binLint, "run", "./...")
}
