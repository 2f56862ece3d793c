package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/vaccx/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":8980")
//	-d string   storage DSN (redis://, postgres://, sqlite://, mem://)
//	-t int      session TTL, seconds
//	-s int      lock arena stripes
//	-p string   password mode: plain or bcrypt
//	-m string   metrics bind address, empty disables
//	-r float    per-peer requests per second, 0 disables
//	-b int      per-peer burst
//	-l string   log level
//
// Only the flags above are picked out of os.Args, so -c/-config and flags of
// other components do not trip the parser.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-s", "-p", "-m", "-r", "-b", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.StorageDSN, "d", config.StorageDSN, "storage DSN")
	sessionTTL := fs.Int("t", int(config.SessionTTL.Seconds()), "session ttl (in seconds)")
	fs.IntVar(&config.LockStripes, "s", config.LockStripes, "lock arena stripes")
	fs.StringVar(&config.PasswordMode, "p", config.PasswordMode, "password mode (plain|bcrypt)")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "metrics address, empty to disable")
	fs.Float64Var(&config.RateLimitRPS, "r", config.RateLimitRPS, "per-peer requests per second, 0 to disable")
	fs.IntVar(&config.RateLimitBurst, "b", config.RateLimitBurst, "per-peer burst")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Second
}
