// Package wire provides encoding and decoding of DNS messages in the
// RFC 1035 wire format, including domain-name compression.
package wire

import "github.com/haukened/rootwalk/internal/dns/domain"

// Codec encodes outgoing queries and decodes inbound responses.
type Codec interface {
	// EncodeQuery serializes a single-question, non-recursive query.
	EncodeQuery(q domain.Question) ([]byte, error)

	// DecodeMessage parses a response buffer into a Message, verifying
	// that the transaction ID echoes expectedID.
	DecodeMessage(data []byte, expectedID uint16) (domain.Message, error)
}
