// Package main is the entry point for the webch CLI.
package main

import "webch.dev/pkg/webch/cmd"

func main() {
	cmd.Execute()
}
