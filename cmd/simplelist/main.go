// Package main provides the simplelist CLI.
package main

import "github.com/mesh-intelligence/simplelist/internal/cli"

func main() {
	cli.Execute()
}
