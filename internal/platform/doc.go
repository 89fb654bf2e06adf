// Package platform answers host-environment questions for the audit entry
// point: whether the current operating system is the audit target, the raw
// executable search path, and the mounted volume roots to probe.
package platform
