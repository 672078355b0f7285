package runner

import (
	"os"
	"strconv"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	envutil "github.com/projectdiscovery/utils/env"

	"github.com/projectdiscovery/ipfold/pkg/partition"
	"github.com/projectdiscovery/ipfold/pkg/version"
)

var minPrefixEnv = envutil.GetEnvOrDefault("IPFOLD_MIN_PREFIX", "")

// Options contains the configuration options for a folding run.
type Options struct {
	InputFile string
	MinPrefix int
	JSON      bool
	NoColor   bool
	Verbose   bool
	Silent    bool
	Version   bool
}

// ParseOptions parses the command line flags provided by a user
func ParseOptions() *Options {
	options := &Options{}
	flagSet := goflags.NewFlagSet()

	flagSet.SetDescription(`ipfold folds a list of IPv4 addresses into the smallest set of covering CIDR blocks, reporting ungroupable addresses as standalone /32 entries.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&options.InputFile, "list", "l", "", "file containing IPv4 addresses (one per line, or a JSON array)"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.IntVarP(&options.MinPrefix, "min-prefix", "mp", defaultMinPrefix(), "smallest prefix length a group may be widened to"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVar(&options.JSON, "json", false, "write the report as JSON"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable output content coloring (ANSI escape codes)"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVar(&options.Version, "version", false, "show version of the project"),
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show verbose output"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show only the report in output"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	options.configureOutput()

	showBanner()

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version.Version)
		os.Exit(0)
	}

	// parity with the historical `breakip <file>` usage: a bare positional
	// path works without -list
	if options.InputFile == "" {
		if args := flagSet.CommandLine.Args(); len(args) > 0 {
			options.InputFile = args[0]
		}
	}
	if options.InputFile == "" {
		gologger.Fatal().Msg("no input file provided: pass one with -list or as a positional argument")
	}
	if options.MinPrefix < 0 || options.MinPrefix > 32 {
		gologger.Fatal().Msgf("invalid minimum prefix length %d: must be in [0,32]", options.MinPrefix)
	}

	return options
}

// defaultMinPrefix resolves the flag default from IPFOLD_MIN_PREFIX when set.
func defaultMinPrefix() int {
	if minPrefixEnv != "" {
		if value, err := strconv.Atoi(minPrefixEnv); err == nil && value >= 0 && value <= 32 {
			return value
		}
		gologger.Warning().Msgf("ignoring invalid IPFOLD_MIN_PREFIX value %q", minPrefixEnv)
	}
	return partition.DefaultFloor
}

// configureOutput configures the output on the screen
func (options *Options) configureOutput() {
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}
