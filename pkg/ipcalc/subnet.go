package ipcalc

// BlockSize returns the total number of addresses in a block with the given
// prefix length, network and broadcast included. Prefix lengths outside
// [0,32] yield 0.
func BlockSize(prefix int) uint64 {
	if prefix < 0 || prefix > 32 {
		return 0
	}
	return 1 << (32 - uint(prefix))
}

// Mask returns the netmask for a prefix length in integer form.
func Mask(prefix int) Address {
	if prefix <= 0 {
		return 0
	}
	if prefix >= 32 {
		return 0xFFFFFFFF
	}
	return Address(0xFFFFFFFF) << (32 - uint(prefix))
}

// NetworkBroadcast computes the bounds of the aligned block containing addr
// at the given prefix length. At prefix 32 the block collapses to addr itself.
func NetworkBroadcast(addr Address, prefix int) (network, broadcast Address) {
	mask := Mask(prefix)
	network = addr & mask
	broadcast = network | ^mask
	return network, broadcast
}
