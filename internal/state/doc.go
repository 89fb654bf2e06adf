// Package state persists the prior audit result between invocations so the
// auditor can suppress repeat diagnostics when nothing changed. It offers an
// in-memory store for long-lived hosts and a YAML file store for the CLI.
package state
