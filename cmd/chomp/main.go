// Package main provides the chomp command for inspecting a record store and
// cleaning scraped text.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
