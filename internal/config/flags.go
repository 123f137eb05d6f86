package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/eternalgreen/eternal-green/internal/util"
)

// Flags holds the parsed command line options.
type Flags struct {
	ConfigPath string
	Start      bool
	// IntervalOverride is a session-only interval in seconds; 0 means no
	// override. It is never written back to the config file.
	IntervalOverride int
	ShowVersion      bool
}

const usageText = `eternal-green - keeps your session active by simulating minimal user input

Usage:
  eternal-green [flags]

Flags:
  -f, -config string     Path to the configuration file (default "~/.eternal_green/config.json")
  -s, -start             Start idle prevention immediately
  -i, -interval string   Session-only interval override, seconds or duration (e.g. "90" or "2m")
  -v, -version           Show version information
  -h, -help              Show this help

Examples:
  eternal-green                 # interactive menu
  eternal-green -s              # start right away with the saved configuration
  eternal-green -s -i 2m        # start with a 2 minute interval for this session
`

// ParseFlags parses the command line options.
func ParseFlags(version string) (*Flags, error) {
	flags := flag.NewFlagSet("eternal-green", flag.ExitOnError)
	flags.Usage = func() {
		fmt.Print(usageText)
	}

	configPath := flags.String("config", "", "Path to the configuration file")
	flags.StringVar(configPath, "f", "", "Path to the configuration file")
	start := flags.Bool("start", false, "Start idle prevention immediately")
	flags.BoolVar(start, "s", false, "Start idle prevention immediately")
	interval := flags.String("interval", "", "Session-only interval override")
	flags.StringVar(interval, "i", "", "Session-only interval override")
	showVersion := flags.Bool("version", false, "Show version information")
	flags.BoolVar(showVersion, "v", false, "Show version information")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	if *showVersion {
		fmt.Printf("eternal-green version %s\n", version)
		os.Exit(0)
	}

	var override int
	if *interval != "" {
		seconds, err := util.ParseInterval(*interval)
		if err != nil {
			return nil, err
		}
		if seconds < IntervalMin || seconds > IntervalMax {
			return nil, ValidationError{
				Field:   "interval",
				Message: fmt.Sprintf("must be between %d and %d seconds, got %d", IntervalMin, IntervalMax, seconds),
			}
		}
		override = seconds
	}

	return &Flags{
		ConfigPath:       *configPath,
		Start:            *start,
		IntervalOverride: override,
		ShowVersion:      *showVersion,
	}, nil
}
