package ipcalc

import (
	"fmt"
	"strconv"
	"strings"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// Address is an IPv4 host address in its 32-bit integer form. The integer and
// dotted-quad textual forms are losslessly interconvertible.
type Address uint32

// ParseAddress converts dotted-quad text into its integer form. The text must
// decompose into exactly four dot-separated decimal octets, each in [0,255];
// anything else is rejected instead of being silently folded into a
// nonsensical value.
func ParseAddress(text string) (Address, error) {
	octets := strings.Split(text, ".")
	if len(octets) != 4 {
		return 0, errorutil.New("malformed IPv4 address %q: expected four octets, got %d", text, len(octets))
	}
	var addr Address
	for _, octet := range octets {
		value, err := strconv.ParseUint(octet, 10, 8)
		if err != nil {
			return 0, errorutil.New("malformed IPv4 address %q: octet %q is not a number in [0,255]", text, octet)
		}
		addr = addr<<8 | Address(value)
	}
	return addr, nil
}

// String renders the address in its canonical dotted-quad form.
func (a Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(a>>24), byte(a>>16), byte(a>>8), byte(a))
}
