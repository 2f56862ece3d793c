// Package config loads runtime configuration for the exchange CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the exchange gRPC endpoint
//	-i int      monitor poll interval (seconds)
//	-f string   local SQLite file
//
// Anything that is not a flag is kept in Config.Command, so
// `client -a host:8980 buy <stock_id>` runs one command and exits.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:8980",
//	  "monitor_interval": "1s",
//	  "request_timeout": "5s",
//	  "local_db_path": "vaccx.db"
//	}
package config
