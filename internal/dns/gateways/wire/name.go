package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// encodeName encodes a domain name into wire format: each label prefixed by
// its one-byte length, terminated by a zero byte. Compression is never
// emitted. A trailing dot on the input is tolerated and ignored.
func encodeName(name string) ([]byte, error) {
	var buf bytes.Buffer
	for _, label := range strings.Split(name, ".") {
		if len(label) == 0 {
			continue
		}
		if len(label) > 63 {
			return nil, fmt.Errorf("label too long: %s", label)
		}
		buf.WriteByte(byte(len(label)))
		buf.WriteString(label)
	}
	buf.WriteByte(0)
	return buf.Bytes(), nil
}

// decodeName decodes a possibly compressed domain name from data starting
// at offset. It returns the name with its trailing dot retained and the
// offset of the byte immediately after the name in the original stream:
// once the first compression pointer is seen, that offset is fixed at two
// bytes past the pointer no matter how many further pointers are chased.
//
// Pointers are hardened against malformed and cyclic messages: every
// followed pointer must target an offset strictly before the position the
// pointer was read from, and the total number of pointer hops is capped by
// the message length.
func decodeName(data []byte, offset int) (string, int, error) {
	var b strings.Builder
	pos := offset
	next := -1 // resume offset, fixed at the first pointer
	hops := 0
	for {
		if pos >= len(data) {
			return "", 0, fmt.Errorf("%w: name runs past end of buffer", ErrMalformedMessage)
		}
		length := int(data[pos])
		if length == 0 {
			pos++
			break
		}
		if length&0xC0 == 0xC0 {
			if pos+1 >= len(data) {
				return "", 0, fmt.Errorf("%w: truncated compression pointer", ErrMalformedMessage)
			}
			target := int(binary.BigEndian.Uint16(data[pos:pos+2]) & 0x3FFF)
			if target >= pos {
				return "", 0, fmt.Errorf("%w: compression pointer at %d targets %d", ErrMalformedMessage, pos, target)
			}
			hops++
			if hops > len(data) {
				return "", 0, fmt.Errorf("%w: compression pointer loop", ErrMalformedMessage)
			}
			if next == -1 {
				next = pos + 2
			}
			pos = target
			continue
		}
		pos++
		if pos+length > len(data) {
			return "", 0, fmt.Errorf("%w: label runs past end of buffer", ErrMalformedMessage)
		}
		b.Write(data[pos : pos+length])
		b.WriteByte('.')
		pos += length
	}
	if next == -1 {
		next = pos
	}
	if b.Len() == 0 {
		// the root name has no labels
		return ".", next, nil
	}
	return b.String(), next, nil
}
