// Package main is the entry point for the qlr CLI tool.
package main

import (
	"github.com/quadralocate/qlr/internal/cmd"
)

func main() {
	cmd.Execute()
}
