package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/microposts/internal/flagx"
)

// parseFlags reads -a, -f and -i from os.Args. Other arguments are filtered
// out with flagx.FilterArgs.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-i"})
	if err := applyFlags(cfg, args); err != nil {
		panic(err)
	}
}

func applyFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "server base URL")
	fs.StringVar(&cfg.StatePath, "f", cfg.StatePath, "local state database path")
	timeout := fs.Int("i", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
