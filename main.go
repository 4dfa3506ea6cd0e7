// Package main is the entry point for the numcompare CLI.
package main

import "numcompare/cmd"

func main() {
	cmd.Execute()
}
