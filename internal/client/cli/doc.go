// Package cli provides the interactive RelatioNest command-line client.
//
// It wires configuration, the local session database, the API client and
// services, and runs a REPL in which every view of the service (login,
// advice form, chat history, contact and info pages) is reached by
// navigating to its path. Protected views are guarded on each navigation;
// an expired or rejected session sends the user back to the login view.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
