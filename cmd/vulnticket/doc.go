// Package vulnticket provides the command-line interface for the vulnticket
// tool. It configures subcommands (export, preview, check, ui), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/vulnticket/vulnticket/cmd/vulnticket"
//	func main() { vulnticket.Execute() }
package vulnticket
