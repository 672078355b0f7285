package partition

import (
	"sort"

	"github.com/projectdiscovery/ipfold/pkg/ipcalc"
)

// DefaultFloor is the smallest prefix length a group may be widened to.
const DefaultFloor = 24

// slash24 masks an address down to its /24 network value.
const slash24 = ipcalc.Address(0xFFFFFF00)

// Subnet is an aggregated block annotated with the input addresses it covers.
// Members are in ascending numeric order; duplicates from the input are kept.
type Subnet struct {
	Block          ipcalc.Block
	Members        []ipcalc.Address
	TotalAddresses uint64
	// Ratio is the member count as a percentage of the block capacity.
	Ratio float64
}

// Result holds the two output categories in production order: blocks covering
// two or more input addresses, and addresses reported as their own /32.
type Result struct {
	Subnets    []Subnet
	Singletons []ipcalc.Address
}

// Partition sorts addrs ascending and consumes it as contiguous runs of
// addresses sharing the run seed's /24 network. A run of one address becomes
// a singleton; longer runs are widened to their minimal covering block, no
// wider than floor. Grouping is a cursor walk over the sorted sequence, not a
// global group-by: a run ends at the first address outside the seed's /24.
// The same input always produces the same result, and every input address
// lands in exactly one output entry.
func Partition(addrs []ipcalc.Address, floor int) Result {
	sorted := make([]ipcalc.Address, len(addrs))
	copy(sorted, addrs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var result Result
	for i := 0; i < len(sorted); {
		seed := sorted[i] & slash24
		j := i + 1
		for j < len(sorted) && sorted[j]&slash24 == seed {
			j++
		}

		if j-i == 1 {
			result.Singletons = append(result.Singletons, sorted[i])
			i = j
			continue
		}

		members := make([]ipcalc.Address, j-i)
		copy(members, sorted[i:j])
		block := ipcalc.MinimalCover(members, floor)
		total := ipcalc.BlockSize(block.Prefix)
		result.Subnets = append(result.Subnets, Subnet{
			Block:          block,
			Members:        members,
			TotalAddresses: total,
			Ratio:          float64(len(members)) / float64(total) * 100,
		})
		i = j
	}
	return result
}
