// Package prepare runs the full data-preparation pass: load the input files,
// build the lookup tables, persist the artifact, and record the run.
//
// The pass is all-or-nothing from the caller's view. Any load or parse failure
// aborts before the artifact is touched, and the artifact itself is replaced
// atomically. An advisory lock next to the artifact keeps two pvrank processes
// from preparing at the same time. History is best effort: a history failure is
// logged and never fails the run.
package prepare
