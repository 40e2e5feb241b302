// Package shipquote exposes module-level metadata.
package shipquote

// Version is the shipquote release version.
const Version = "0.1.0"
