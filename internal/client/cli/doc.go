// Package cli provides the interactive Lumina command-line client.
//
// It wires configuration, the local record store, the auth and insight
// services and a session holder, then runs a REPL. A session persisted by
// a previous run is restored on start.
//
// Key features:
//   - Signup / Login / Logout, with the same field checks as the web forms
//   - whoami for the current user
//   - insight [motivation|productivity|learning]
//   - stats for insight outcomes of the running process
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See NewApp and runREPL for details.
package cli
