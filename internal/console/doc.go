// Package console renders diagnostic lines carrying inline <color=...> markup
// for terminal display, either styling the spans or stripping them.
package console
