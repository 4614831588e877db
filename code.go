package huffcode

import (
	"fmt"
	"strconv"
)

// Code represents a sequence of bits as the characters '0' and '1', first
// bit first.  '0' selects the left child of a node and '1' the right.
type Code string

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

func (hc Code) push(bit byte) Code {
	return hc + Code(bit)
}

func (hc Code) pop() Code {
	if len(hc) == 0 {
		return hc
	}
	return hc[:len(hc)-1]
}
