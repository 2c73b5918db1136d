// Package main provides the clients CLI.
package main

import "github.com/mesh-intelligence/clients/internal/cli"

func main() {
	cli.Execute()
}
