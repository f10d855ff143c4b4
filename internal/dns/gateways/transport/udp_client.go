// Package transport sends DNS query datagrams over UDP, one socket per
// hop. It owns address-family selection and the destination port; the
// resolution engine only sees opaque packets.
package transport

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/haukened/rootwalk/internal/dns/common/log"
	"github.com/haukened/rootwalk/internal/dns/services/resolver"
)

// Standard DNS UDP packet size limit.
const maxPacketSize = 512

// DialFunc defines a function type for establishing a network connection.
// It takes a context for cancellation, the network type (e.g. "udp4"),
// and the address to connect to.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// UDPClient exchanges one query datagram for one response datagram per
// call. The socket is opened when the exchange starts and released when
// the response arrives or the exchange fails.
type UDPClient struct {
	port    int
	timeout time.Duration
	dial    DialFunc
	logger  log.Logger
}

// Options defines configuration parameters for the UDP client.
// All fields have defaults; Dial exists to inject fakes in tests.
type Options struct {
	Port    int           // destination port, default 53
	Timeout time.Duration // fallback deadline when the context has none
	Dial    DialFunc
	Logger  log.Logger
}

// NewUDPClient creates a new UDP exchange client.
func NewUDPClient(opts Options) *UDPClient {
	if opts.Port <= 0 {
		opts.Port = 53
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.Dial == nil {
		opts.Dial = (&net.Dialer{}).DialContext
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &UDPClient{
		port:    opts.Port,
		timeout: opts.Timeout,
		dial:    opts.Dial,
		logger:  opts.Logger,
	}
}

// network selects the address family from the textual form of the server
// address: anything that parses as an IPv4 address goes over udp4,
// everything else over udp6.
func network(server string) string {
	if ip := net.ParseIP(server); ip != nil && ip.To4() == nil {
		return "udp6"
	}
	return "udp4"
}

// Exchange sends packet to server and returns the single response
// datagram. The server is a bare textual IP address; port and
// address-family selection happen here.
func (c *UDPClient) Exchange(ctx context.Context, server string, packet []byte) ([]byte, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	addr := net.JoinHostPort(server, strconv.Itoa(c.port))
	conn, err := c.dial(ctx, network(server), addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := conn.Write(packet); err != nil {
		return nil, fmt.Errorf("write to %s failed: %w", addr, err)
	}

	buffer := make([]byte, maxPacketSize)
	n, err := conn.Read(buffer)
	if err != nil {
		return nil, fmt.Errorf("read from %s failed: %w", addr, err)
	}

	c.logger.Debug(map[string]any{
		"server":  addr,
		"network": network(server),
		"sent":    len(packet),
		"recv":    n,
	}, "Completed UDP exchange")

	return buffer[:n], nil
}

var _ resolver.Transport = (*UDPClient)(nil)
