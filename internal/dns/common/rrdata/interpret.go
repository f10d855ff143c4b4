package rrdata

import (
	"fmt"

	"github.com/haukened/rootwalk/internal/dns/domain"
)

// Interpret converts raw RDATA bytes into their text form based on type.
func Interpret(rrType domain.RRType, data []byte) (string, error) {
	switch rrType {
	case domain.RRTypeA: // 1
		return interpretAData(data)
	case domain.RRTypeAAAA: // 28
		return interpretAAAAData(data)
	case domain.RRTypeNS: // 2
		// NS RDATA may contain compression pointers into the enclosing
		// message, which this package cannot resolve in isolation.
		return "", fmt.Errorf("NS rdata must be decoded by the wire codec")
	default:
		return interpretUnknownData(data), nil
	}
}
