// Package session owns the client's authentication state.
//
// Store persists the single credential slot (and a cached profile) in the
// local key-value store. Guard decides from that slot whether the client is
// authenticated, sends protected views to the login view when it is not,
// and performs logout. Both degrade to "logged out" on every failure: a
// broken store, an undecodable token and an expired token all read as
// unauthenticated and are never surfaced as a crash.
//
// The token is decoded without verifying its signature. The result gates
// what the terminal shows; the server remains the only authority.
package session
