package domain

import "fmt"

// ResourceRecord represents one parsed entry from the answer, authority,
// or additional section of a response. Data holds the interpreted text
// form of the RDATA: a dotted-decimal IPv4 address for A, uncompressed
// hex groups for AAAA, a decompressed domain name for NS, or a plain hex
// string for anything else.
type ResourceRecord struct {
	Name  string
	Type  RRType
	Class RRClass
	TTL   uint32
	Data  string
}

// NewResourceRecord constructs a ResourceRecord and validates its fields.
func NewResourceRecord(name string, rrtype RRType, class RRClass, ttl uint32, data string) (ResourceRecord, error) {
	rr := ResourceRecord{
		Name:  name,
		Type:  rrtype,
		Class: class,
		TTL:   ttl,
		Data:  data,
	}
	if err := rr.Validate(); err != nil {
		return ResourceRecord{}, err
	}
	return rr, nil
}

// Validate checks whether the ResourceRecord fields are structurally valid.
func (rr ResourceRecord) Validate() error {
	// Data may legitimately be empty: unknown types are allowed a
	// zero-length RDATA and render as an empty hex string.
	if rr.Name == "" {
		return fmt.Errorf("record name must not be empty")
	}
	return nil
}
