// Package domain contains the core value types exchanged between the wire
// codec, the transport, and the resolution engine. Types here carry no
// behavior beyond validation and simple lookups; all I/O lives in gateways.
package domain
