package ipcalc

import "fmt"

// Block is a contiguous CIDR block. Network is mask-aligned for Prefix;
// Broadcast is the highest address of the block.
type Block struct {
	Network   Address
	Broadcast Address
	Prefix    int
	// Partial marks the forced-floor case: no prefix length at or above the
	// floor produced a block covering every address, so the floor block was
	// used even though some addresses fall outside it.
	Partial bool
}

// CIDR renders the block in "network/prefix" notation.
func (b Block) CIDR() string {
	return fmt.Sprintf("%s/%d", b.Network, b.Prefix)
}

// Contains reports whether addr lies inside the block bounds.
func (b Block) Contains(addr Address) bool {
	return addr >= b.Network && addr <= b.Broadcast
}

// MinimalCover finds the longest prefix length no shorter than floor whose
// aligned block at the smallest input address contains every address in
// addrs. Containment is verified for each address rather than inferred from
// the min/max pair, since alignment can push the block boundary away from the
// naive numeric span. When no prefix in [floor,32] covers the whole set, the
// floor block is returned with Partial set. addrs must be non-empty.
func MinimalCover(addrs []Address, floor int) Block {
	lowest := addrs[0]
	for _, addr := range addrs[1:] {
		if addr < lowest {
			lowest = addr
		}
	}

	for prefix := 32; prefix >= floor; prefix-- {
		network, broadcast := NetworkBroadcast(lowest, prefix)
		if containsAll(addrs, network, broadcast) {
			return Block{Network: network, Broadcast: broadcast, Prefix: prefix}
		}
	}

	network, broadcast := NetworkBroadcast(lowest, floor)
	return Block{Network: network, Broadcast: broadcast, Prefix: floor, Partial: true}
}

func containsAll(addrs []Address, network, broadcast Address) bool {
	for _, addr := range addrs {
		if addr < network || addr > broadcast {
			return false
		}
	}
	return true
}
