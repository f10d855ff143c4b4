package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/haukened/rootwalk/internal/dns/common/log"
	"github.com/haukened/rootwalk/internal/dns/common/rrdata"
	"github.com/haukened/rootwalk/internal/dns/domain"
)

// udpCodec implements the Codec interface for standard DNS over UDP messages.
type udpCodec struct {
	logger log.Logger
}

// NewUDPCodec creates and returns a new instance of udpCodec using the
// provided logger.
func NewUDPCodec(logger log.Logger) *udpCodec {
	return &udpCodec{
		logger: logger,
	}
}

// EncodeQuery serializes a Question into a binary format suitable for
// sending via UDP. Flags are all zero: a standard, non-recursive,
// non-truncated query carrying exactly one question.
func (c *udpCodec) EncodeQuery(q domain.Question) ([]byte, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	// Header
	_ = binary.Write(&buf, binary.BigEndian, q.ID)      // ID
	_ = binary.Write(&buf, binary.BigEndian, uint16(0)) // Flags
	_ = binary.Write(&buf, binary.BigEndian, uint16(1)) // QDCOUNT
	_ = binary.Write(&buf, binary.BigEndian, uint16(0)) // ANCOUNT
	_ = binary.Write(&buf, binary.BigEndian, uint16(0)) // NSCOUNT
	_ = binary.Write(&buf, binary.BigEndian, uint16(0)) // ARCOUNT

	// Question
	name, err := encodeName(q.Name)
	if err != nil {
		return nil, err
	}
	buf.Write(name)
	_ = binary.Write(&buf, binary.BigEndian, uint16(q.Type))
	_ = binary.Write(&buf, binary.BigEndian, uint16(q.Class))

	c.logger.Debug(map[string]any{
		"query_id": q.ID,
		"name":     q.Name,
		"type":     q.Type.String(),
		"size":     buf.Len(),
	}, "Encoded DNS query")

	return buf.Bytes(), nil
}

// IsResponse reports whether the buffer carries a response: the QR bit
// (bit 15 of the flags word at byte offset 2) is set.
func IsResponse(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	return binary.BigEndian.Uint16(data[2:4])&0x8000 != 0
}

// DecodeMessage parses a raw DNS response into a Message. It rejects
// buffers whose QR bit is unset and verifies the echoed transaction ID.
// Parsing is a pure function of the buffer: decoding the same bytes twice
// yields identical Messages.
func (c *udpCodec) DecodeMessage(data []byte, expectedID uint16) (domain.Message, error) {
	if len(data) < 12 {
		return domain.Message{}, fmt.Errorf("%w: header truncated at %d bytes", ErrMalformedMessage, len(data))
	}
	if !IsResponse(data) {
		return domain.Message{}, ErrNotAResponse
	}

	hdr := domain.Header{
		ID:              binary.BigEndian.Uint16(data[0:2]),
		Flags:           binary.BigEndian.Uint16(data[2:4]),
		QuestionCount:   binary.BigEndian.Uint16(data[4:6]),
		AnswerCount:     binary.BigEndian.Uint16(data[6:8]),
		AuthorityCount:  binary.BigEndian.Uint16(data[8:10]),
		AdditionalCount: binary.BigEndian.Uint16(data[10:12]),
	}
	if hdr.ID != expectedID {
		return domain.Message{}, fmt.Errorf("%w: ID mismatch: expected %d, got %d", ErrMalformedMessage, expectedID, hdr.ID)
	}

	// Question echo. One question per message is assumed, but skipping
	// honors the count the server reported.
	var questionName string
	offset := 12
	for i := 0; i < int(hdr.QuestionCount); i++ {
		name, newOffset, err := decodeName(data, offset)
		if err != nil {
			return domain.Message{}, fmt.Errorf("failed to decode question name: %w", err)
		}
		if i == 0 {
			questionName = name
		}
		offset = newOffset + 4 // QTYPE + QCLASS
		if offset > len(data) {
			return domain.Message{}, fmt.Errorf("%w: truncated question section", ErrMalformedMessage)
		}
	}

	// Each section continues from wherever the previous one ended; an
	// empty section leaves the offset unchanged.
	answers, offset, err := c.parseSection(data, offset, hdr.AnswerCount, "answer")
	if err != nil {
		return domain.Message{}, err
	}
	authority, offset, err := c.parseSection(data, offset, hdr.AuthorityCount, "authority")
	if err != nil {
		return domain.Message{}, err
	}
	additional, _, err := c.parseSection(data, offset, hdr.AdditionalCount, "additional")
	if err != nil {
		return domain.Message{}, err
	}

	msg := domain.Message{
		Header:       hdr,
		QuestionName: questionName,
		Answers:      answers,
		Authority:    authority,
		Additional:   additional,
	}

	c.logger.Debug(map[string]any{
		"query_id":   hdr.ID,
		"question":   questionName,
		"answers":    len(msg.Answers),
		"authority":  len(msg.Authority),
		"additional": len(msg.Additional),
	}, "Decoded DNS response")

	return msg, nil
}

// parseSection parses count sequential records starting at offset and
// returns them along with the offset where the next section begins.
func (c *udpCodec) parseSection(data []byte, offset int, count uint16, section string) ([]domain.ResourceRecord, int, error) {
	records := make([]domain.ResourceRecord, 0, count)
	for i := 0; i < int(count); i++ {
		rr, newOffset, err := c.parseRecord(data, offset)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to parse %s record %d: %w", section, i, err)
		}
		records = append(records, rr)
		offset = newOffset
	}
	return records, offset, nil
}

// parseRecord extracts a single resource record starting at offset and
// returns it along with the offset immediately following the record.
func (c *udpCodec) parseRecord(data []byte, offset int) (domain.ResourceRecord, int, error) {
	name, newOffset, err := decodeName(data, offset)
	if err != nil {
		return domain.ResourceRecord{}, 0, fmt.Errorf("failed to decode record name: %w", err)
	}
	offset = newOffset

	if offset+10 > len(data) {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%w: truncated record header", ErrMalformedMessage)
	}

	typ := domain.RRType(binary.BigEndian.Uint16(data[offset : offset+2]))
	offset += 2
	class := domain.RRClass(binary.BigEndian.Uint16(data[offset : offset+2]))
	offset += 2
	ttl := binary.BigEndian.Uint32(data[offset : offset+4])
	offset += 4
	rdLen := int(binary.BigEndian.Uint16(data[offset : offset+2]))
	offset += 2

	var text string
	if typ == domain.RRTypeNS {
		// NS RDATA is itself a compressed name. Decode it against the full
		// buffer and advance by however many bytes the name actually
		// occupied in the stream; the stated RDLENGTH is ignored, since a
		// pointer may end the field early.
		target, newOffset, err := decodeName(data, offset)
		if err != nil {
			return domain.ResourceRecord{}, 0, fmt.Errorf("failed to decode NS target: %w", err)
		}
		text = target
		offset = newOffset
	} else {
		if offset+rdLen > len(data) {
			return domain.ResourceRecord{}, 0, fmt.Errorf("%w: truncated rdata", ErrMalformedMessage)
		}
		text, err = rrdata.Interpret(typ, data[offset:offset+rdLen])
		if err != nil {
			return domain.ResourceRecord{}, 0, fmt.Errorf("failed to interpret rdata: %w", err)
		}
		offset += rdLen
	}

	rr, err := domain.NewResourceRecord(name, typ, class, ttl, text)
	if err != nil {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	return rr, offset, nil
}

var _ Codec = &udpCodec{}
