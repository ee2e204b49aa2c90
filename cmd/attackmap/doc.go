// Package attackmap provides the command-line interface for the attackmap
// tool. It configures subcommands (generate, network), parses flags, and
// executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/attackmap/attackmap/cmd/attackmap"
//	func main() { attackmap.Execute() }
package attackmap
