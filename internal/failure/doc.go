// Package failure defines the error markers shared by pvrank components.
//
// Components wrap their errors with one of the exported sentinels so the CLI can
// classify a failure (missing input, malformed input, bad configuration,
// persistence) without string matching. Lookup misses are not errors and never
// use these markers.
package failure
