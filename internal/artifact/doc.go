// Package artifact persists the prepared lookup tables as a single JSON file.
//
// The file is pretty-printed with sorted keys so unchanged inputs produce
// byte-identical output, and it is replaced atomically so a failed write never
// leaves a partial artifact behind.
package artifact
