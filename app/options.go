package app

import (
	"flag"
	"io"
	"time"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
)

type Options struct {
	DevicesJSON string
	SkipVerify  bool
	DryRun      bool
	NoRootCheck bool
	Auto        bool
	Interval    time.Duration
}

func ParseOptions(args []string) (Options, error) {
	flagSet := flag.NewFlagSet("hot-resize", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	devices := flagSet.String("devices", "", "Devices to resize in JSON format")
	skipVerify := flagSet.Bool("skip-verify", false, "Skip filesystem verification after resize")
	dryRun := flagSet.Bool("dry-run", false, "Show what would be done without making changes")
	noRootCheck := flagSet.Bool("no-root-check", false, "Skip root user check (not recommended)")
	auto := flagSet.Bool("auto", false, "Run in daemon mode, continuously checking for growth")
	interval := flagSet.Int("interval", 60, "Check interval in seconds for daemon mode")

	err := flagSet.Parse(args[1:])
	if err != nil {
		return Options{}, bosherr.WrapError(err, "Parsing flags")
	}

	if *auto && *dryRun {
		return Options{}, bosherr.Error("The -auto and -dry-run flags cannot be combined")
	}

	return Options{
		DevicesJSON: *devices,
		SkipVerify:  *skipVerify,
		DryRun:      *dryRun,
		NoRootCheck: *noRootCheck,
		Auto:        *auto,
		Interval:    time.Duration(*interval) * time.Second,
	}, nil
}
