package config

import (
	"flag"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/vaccx/internal/flagx"
)

// valueFlags are the flags that take a value, including the config file
// flags handled by parseJson.
var valueFlags = []string{"-a", "-i", "-f", "-c", "-config", "--config"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the exchange server
//	-i int      monitor poll interval in seconds
//	-f string   local SQLite file
//
// Positional arguments end up in cfg.Command.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	monitorInterval := fs.Int("i", int(cfg.MonitorInterval.Seconds()), "monitor interval (in seconds)")
	fs.StringVar(&cfg.LocalDBPath, "f", cfg.LocalDBPath, "local database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.MonitorInterval = time.Duration(*monitorInterval) * time.Second
	cfg.Command = positional(os.Args[1:])
}

// positional drops known flags and their values from args.
func positional(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case !strings.HasPrefix(arg, "-"):
			out = append(out, arg)
		case strings.Contains(arg, "="):
		case slices.Contains(valueFlags, arg) && i+1 < len(args):
			i++
		}
	}
	return out
}
