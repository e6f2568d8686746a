// Package skills discovers skill documents and inlines the shared
// requirements into each of them.
//
// A run loads the common requirements once, then processes every target
// document independently and in sorted order. Per-document problems are
// reported and counted; only a missing source document or an empty target
// set abort the run.
package skills
