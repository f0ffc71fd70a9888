// Package cli provides the interactive CampusFind command-line client.
//
// It wires configuration, the local sqlite-backed store, the domain services,
// and an interactive REPL. Typical flow: restore the persisted session, then
// execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout with a session that survives restarts
//   - Report found items with a photo and a security question
//   - Browse and filter available items, claim them by answering the question
//   - Contact-request and pickup-confirmation flows between finder and owner
//   - Per-user notification inbox and a light/dark theme preference
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
