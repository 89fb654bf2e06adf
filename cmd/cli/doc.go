// Package cli assembles the sdkaudit command-line application: the Cobra root
// command, configuration loading, structured logging, and the audit
// subcommand registration.
package cli
