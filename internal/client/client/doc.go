// Package client contains the CLI's building blocks for talking to the
// microposts server and for keeping local state.
//
// # Overview
//
//  1. Client is the transport-agnostic API contract: SignUp, Login,
//     CreatePost, the three listings and Ping.
//  2. HTTPClient implements it over the server's JSON/HTTP interface and
//     maps status codes to sentinel errors.
//  3. InitDatabase and RunMigrations open the SQLite state database and apply
//     the embedded goose migrations.
//
// # Error Handling
//
// Callers match ErrUnavailable, ErrUnauthorized and ErrConflict with
// errors.Is. Other non-2xx answers become *APIError.
package client
