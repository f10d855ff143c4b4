// Package rrdata converts raw RDATA bytes into their human-readable text
// form, branching on record type. NS records never pass through here: their
// RDATA is a compressed domain name and must be decoded against the full
// message buffer by the wire codec.
package rrdata

import "encoding/hex"

// interpretUnknownData renders RDATA of an unrecognized type as a lowercase
// hex string with no separators. Never fails; empty RDATA yields "".
func interpretUnknownData(b []byte) string {
	return hex.EncodeToString(b)
}
