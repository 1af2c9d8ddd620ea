//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// smokeInput is the command file interpreted by test:smoke.
const smokeInput = "testdata/commands.txt"

// Test groups test targets (all, unit, integration, smoke).
type Test mg.Namespace

// All runs all tests (unit and integration).
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Unit runs only unit tests, excluding the tests/ directory.
func (Test) Unit() error {
	pkgs, err := sh.Output(binGo, "list", "./...")
	if err != nil {
		return err
	}
	var unitPkgs []string
	for pkg := range strings.SplitSeq(pkgs, "\n") {
		if pkg != "" && !strings.Contains(pkg, "/tests/") && !strings.HasSuffix(pkg, "/tests") {
			unitPkgs = append(unitPkgs, pkg)
		}
	}
	if len(unitPkgs) == 0 {
		fmt.Println("No unit test packages found.")
		return nil
	}
	args := append([]string{"test", "-v"}, unitPkgs...)
	return sh.RunV(binGo, args...)
}

// Integration builds first, then runs only integration tests.
func (Test) Integration() error {
	if _, err := os.Stat("tests"); os.IsNotExist(err) {
		fmt.Println("No integration test directory found (tests/).")
		return nil
	}
	mg.Deps(Build)
	return sh.RunV(binGo, "test", "-v", "./tests/...")
}

// Smoke builds the binary and interprets testdata/commands.txt in both
// modes, printing the transcripts to stdout.
func (Test) Smoke() error {
	mg.Deps(Build)
	bin := filepath.Join(binaryDir, binaryName)
	for _, mode := range []string{"strict", "compat"} {
		fmt.Printf("--- mode %s\n", mode)
		if err := sh.RunV(bin, "--mode", mode, "--summary", "run", smokeInput, "-"); err != nil {
			return fmt.Errorf("smoke run (%s): %w", mode, err)
		}
	}
	return nil
}
