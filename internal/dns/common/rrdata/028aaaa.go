package rrdata

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// interpretAAAAData renders a 16-byte AAAA record RDATA as eight big-endian
// 16-bit groups in lowercase hex without zero padding, joined by colons.
// This is the uncompressed textual form (2001:db8:0:800:0:0:0:1), not the
// RFC 5952 canonical one; downstream consumers depend on the exact
// uncompressed rendering, so net.IP.String() is off limits here.
func interpretAAAAData(b []byte) (string, error) {
	if len(b) != 16 {
		return "", fmt.Errorf("invalid AAAA record length: %d", len(b))
	}
	groups := make([]string, 8)
	for i := 0; i < 8; i++ {
		groups[i] = fmt.Sprintf("%x", binary.BigEndian.Uint16(b[i*2:i*2+2]))
	}
	return strings.Join(groups, ":"), nil
}
