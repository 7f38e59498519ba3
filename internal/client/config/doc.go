// Package config loads runtime configuration for the microposts CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (or the CONFIG env var).
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the server, e.g. http://127.0.0.1:8080
//	-f string   path of the local state database
//	-i int      request timeout (seconds)
//
// # JSON schema
//
// Timeouts use timex.Duration, so they may be strings like "5s" or integer
// nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "state_path": "client.db",
//	  "request_timeout": "5s"
//	}
package config
