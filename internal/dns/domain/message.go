package domain

import "github.com/haukened/rootwalk/internal/dns/common/utils"

// headerQRBit is bit 15 of the flags word, set on responses.
const headerQRBit = 0x8000

// Header represents the fixed 12-byte DNS message header.
// The four counts describe exactly how many entries the corresponding
// sections hold; the parser treats any count that implies a read past
// the end of the buffer as malformed.
type Header struct {
	ID              uint16
	Flags           uint16
	QuestionCount   uint16
	AnswerCount     uint16
	AuthorityCount  uint16
	AdditionalCount uint16
}

// IsResponse returns true if the QR bit of the flags word is set.
func (h Header) IsResponse() bool {
	return h.Flags&headerQRBit != 0
}

// Message is one fully parsed response. It is constructed fresh for every
// inbound datagram, never mutated after parsing, and discarded once the
// engine has made its decision for the hop.
type Message struct {
	Header       Header
	QuestionName string
	Answers      []ResourceRecord
	Authority    []ResourceRecord
	Additional   []ResourceRecord
}

// FirstAuthorityNS returns the first NS record in the authority section,
// or false if the section holds none. One is enough: any single listed
// name server can further delegate or answer.
func (m Message) FirstAuthorityNS() (ResourceRecord, bool) {
	for _, rr := range m.Authority {
		if rr.Type == RRTypeNS {
			return rr, true
		}
	}
	return ResourceRecord{}, false
}

// Glue returns the address carried by an additional-section record whose
// owner name equals target. Records of the preferred address type win;
// if none match, any other address-type record for the target is
// accepted, since a next-hop server is reachable over either family.
func (m Message) Glue(target string, preferred RRType) (string, bool) {
	want := utils.CanonicalDNSName(target)
	var fallback string
	for _, rr := range m.Additional {
		if !rr.Type.IsAddress() || utils.CanonicalDNSName(rr.Name) != want {
			continue
		}
		if rr.Type == preferred {
			return rr.Data, true
		}
		if fallback == "" {
			fallback = rr.Data
		}
	}
	if fallback != "" {
		return fallback, true
	}
	return "", false
}
