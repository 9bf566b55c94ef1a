package config

import (
	"flag"
	"os"
	"time"

	"github.com/avasiljevs/gpavault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the database file (default from Config)
//	-k string   secret key for signing session tokens
//	-t int      session token validity in seconds
//
// os.Args is filtered through flagx.FilterArgs so flags owned by other
// components are left alone.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the database file")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "secret key for signing session tokens")
	tokenValidity := fs.Int("t", int(cfg.SessionTokenValidity.Seconds()), "session token validity (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionTokenValidity = time.Duration(*tokenValidity) * time.Second
}
