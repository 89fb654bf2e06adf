// Package localization provides the per-language message catalogs used to
// compose audit diagnostics, along with BCP 47 tag resolution and locale
// detection.
package localization
