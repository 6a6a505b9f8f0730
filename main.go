// Package main is the entry point for the calcetto CLI tool, which imports
// five-a-side match sheets and computes player ratings and performance stats.
package main

import "github.com/alebellina412/calcetto-app/cmd"

func main() {
	cmd.Execute()
}
