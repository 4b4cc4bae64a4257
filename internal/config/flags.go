package config

import (
	"flag"
	"os"
	"time"

	"github.com/danunant/bbank/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the local database file (default from Config)
//	-s bool     seed demo data on first run (default from Config)
//	-t int      session validity in minutes (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database file")
	fs.BoolVar(&cfg.SeedDemoData, "s", cfg.SeedDemoData, "seed demo data on first run")
	sessionValidity := fs.Int("t", int(cfg.SessionValidity.Minutes()), "session validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionValidity = time.Duration(*sessionValidity) * time.Minute
}
