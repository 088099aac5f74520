// Package orchestrator wires the loader, view-model decoding, form item and
// renderer registry into one entry point for callers rendering a single
// property.
package orchestrator
