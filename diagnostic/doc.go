// Package diagnostic collects non-fatal findings produced while augmenting a
// document: fields that were skipped because their value kind is not
// supported, and list fields whose elements collapsed into one leaf.
//
// Fatal problems are returned as errors by the annotate package. Diagnostics
// only describe what a successful build silently did.
package diagnostic
