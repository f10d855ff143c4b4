package domain

import "fmt"

// RRClass represents a DNS class (usually IN for Internet).
type RRClass uint16

// RRClassIN is the Internet class. Queries are always sent class IN;
// responses may echo whatever class the server put on the wire.
const RRClassIN RRClass = 1

// String returns the textual representation of the RRClass.
func (c RRClass) String() string {
	if c == RRClassIN {
		return "IN"
	}
	return fmt.Sprintf("CLASS%d", uint16(c))
}
