package domain

import "fmt"

// RRType represents a DNS resource record type code.
// See IANA DNS Parameters for assigned values.
type RRType uint16

// Record types this resolver interprets. Anything else passes through
// as an uninterpreted hex payload.
const (
	RRTypeA    RRType = 1  // A - IPv4 address
	RRTypeNS   RRType = 2  // NS - Name server
	RRTypeAAAA RRType = 28 // AAAA - IPv6 address
)

// IsAddress returns true if the type carries an IP address in its RDATA.
func (t RRType) IsAddress() bool {
	return t == RRTypeA || t == RRTypeAAAA
}

// IsQueryable returns true if the type may be used as a query type.
// The encoder only emits A and AAAA questions.
func (t RRType) IsQueryable() bool {
	return t == RRTypeA || t == RRTypeAAAA
}

// String returns the textual representation of the RRType.
// For unknown types, it returns "TYPE<value>" in the RFC 3597 style.
func (t RRType) String() string {
	switch t {
	case RRTypeA:
		return "A"
	case RRTypeNS:
		return "NS"
	case RRTypeAAAA:
		return "AAAA"
	default:
		return fmt.Sprintf("TYPE%d", uint16(t))
	}
}

// RRTypeFromString converts a record type string to its RRType value.
// Returns 0 for anything that is not a supported query type.
func RRTypeFromString(s string) RRType {
	switch s {
	case "A":
		return RRTypeA
	case "NS":
		return RRTypeNS
	case "AAAA":
		return RRTypeAAAA
	default:
		return 0
	}
}
