// Package history records every prepare run in a small SQLite database.
//
// Each row captures when the run happened, whether it succeeded, how many
// names and families it produced, and the SHA256 of the artifact it wrote, so
// `pvrank history` can show when the rankings last changed. Schema changes bump
// schemaVersion in schema.go; users delete the database to adopt a new schema.
package history
