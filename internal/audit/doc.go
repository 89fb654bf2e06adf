// Package audit implements the SDK search-path diagnostic used by the
// sdkaudit CLI.
//
// It exposes CommandBuilder for wiring the audit Cobra command, Service for
// driving the check programmatically, and the pure Inspect function the
// service classifies with. The audit derives 32-bit and 64-bit installation
// candidates per volume root, checks their presence and ordering in the raw
// search path, compares the outcome against the stored prior result, and
// composes a localized diagnostic only when the outcome changed.
package audit
