package runner

import (
	"os"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"

	"github.com/projectdiscovery/ipfold/pkg/ipcalc"
	"github.com/projectdiscovery/ipfold/pkg/loader"
	"github.com/projectdiscovery/ipfold/pkg/partition"
	"github.com/projectdiscovery/ipfold/pkg/report"
)

// Runner contains the internal logic of the program
type Runner struct {
	options *Options
}

// NewRunner instance
func NewRunner(options *Options) (*Runner, error) {
	return &Runner{options: options}, nil
}

// Run loads the address list, partitions it into covering blocks and writes
// the report to standard output.
func (r *Runner) Run() error {
	candidates, err := loader.Load(r.options.InputFile)
	if err != nil {
		return err
	}
	gologger.Verbose().Msgf("loaded %d address candidates from %s", len(candidates), r.options.InputFile)

	addrs := make([]ipcalc.Address, 0, len(candidates))
	for _, candidate := range candidates {
		addr, err := ipcalc.ParseAddress(candidate)
		if err != nil {
			return errorutil.NewWithErr(err).Msgf("could not parse address list %s", r.options.InputFile)
		}
		addrs = append(addrs, addr)
	}

	result := partition.Partition(addrs, r.options.MinPrefix)
	gologger.Verbose().Msgf("partitioned %d addresses into %d aggregated subnets and %d standalone entries",
		len(addrs), len(result.Subnets), len(result.Singletons))
	for _, subnet := range result.Subnets {
		if subnet.Block.Partial {
			gologger.Warning().Msgf("block %s does not cover all of its members (minimum prefix %d forced)",
				subnet.Block.CIDR(), r.options.MinPrefix)
		}
	}

	writer := report.NewWriter(os.Stdout, !r.options.NoColor)
	if r.options.JSON {
		return writer.WriteJSON(result)
	}
	return writer.WriteText(result)
}
