// Package storage bootstraps the client's local SQLite database.
//
// The database is the persistent key-value store behind the session: it
// holds the authentication credential and the cached user profile (see
// repositories/kv). Schema changes ship as embedded goose migrations and are
// applied on every start; goose keeps them idempotent.
//
// The pure-Go modernc.org/sqlite driver is used, so the client builds without
// cgo.
package storage
