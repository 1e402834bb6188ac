// Package audit persists the durable record of every organizing run: one
// process event per successful move and zero or more issue events per file.
// The store is SQLite-backed and append-only; initialization is idempotent.
package audit
