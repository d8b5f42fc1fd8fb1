// Package devtoolbox provides the command-line interface for the devtoolbox
// utilities. It wires subcommands (contrast, palette, json, jwt, uuid, cron,
// qr, ...), resolves flags against the YAML config files and renders results.
// Running it without a subcommand opens the interactive dashboard.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/devtoolbox/devtoolbox/cmd/devtoolbox"
//	func main() { devtoolbox.Execute() }
package devtoolbox
