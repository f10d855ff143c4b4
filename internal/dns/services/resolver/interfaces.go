package resolver

import (
	"context"

	"github.com/haukened/rootwalk/internal/dns/domain"
)

// Transport sends one query datagram to a name server and delivers exactly
// one corresponding response datagram, or signals failure. The server is
// given as a bare textual IP address; the transport owns address-family
// selection and the destination port.
type Transport interface {
	Exchange(ctx context.Context, server string, packet []byte) ([]byte, error)
}

// Codec encodes outgoing queries and decodes inbound responses. The wire
// gateway provides the production implementation.
type Codec interface {
	EncodeQuery(q domain.Question) ([]byte, error)
	DecodeMessage(data []byte, expectedID uint16) (domain.Message, error)
}
