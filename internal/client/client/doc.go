// Package client holds the client's outbound and storage plumbing.
//
// # Overview
//
//  1. Generator, the contract for structured-output text generation, and
//     GenAIClient, its implementation over google.golang.org/genai.
//  2. Local persistence bootstrap (InitDatabase, RunMigrations): an SQLite
//     file migrated with embedded goose migrations.
//
// # Error Handling
//
// ErrMissingAPIKey and ErrEmptyResponse can be matched with errors.Is. The
// insight service treats every Generator error the same way: it substitutes
// the fallback insight.
package client
