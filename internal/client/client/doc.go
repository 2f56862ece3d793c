// Package client contains the client-side building blocks of the exchange
// CLI.
//
// # Overview
//
// The package provides:
//  1. The API contract the CLI talks to (see the Client interface):
//     Register, Login, CreateVaccine, Buy, Balance, GetPrice, List and
//     GetUserVaccine.
//  2. A gRPC implementation (see GRPCClient) that speaks the exchange's JSON
//     codec, attaches the session token to every call and maps gRPC status
//     codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     CLI's SQLite store, migrated with embedded goose migrations.
//
// # Error Handling
//
// Transport conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotLoggedIn. Other
// failures keep the server's status message.
package client
