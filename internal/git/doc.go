// Package git locates the repository whose skill documents are rewritten.
//
// The tool is usually run from somewhere inside the skills repository; the
// working tree root anchors the configured source and root paths.
package git
