package wire

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/rootwalk/internal/dns/common/log"
	"github.com/haukened/rootwalk/internal/dns/domain"
)

func testCodec() *udpCodec {
	return NewUDPCodec(log.NewNoopLogger())
}

func TestEncodeQuery_Layout(t *testing.T) {
	codec := testCodec()

	q, err := domain.NewQuestion(0x1234, "example.com", domain.RRTypeA)
	require.NoError(t, err)

	data, err := codec.EncodeQuery(q)
	require.NoError(t, err)

	expected := []byte{
		0x12, 0x34, // ID
		0x00, 0x00, // Flags: non-recursive query
		0x00, 0x01, // QDCOUNT
		0x00, 0x00, // ANCOUNT
		0x00, 0x00, // NSCOUNT
		0x00, 0x00, // ARCOUNT
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0,
		0x00, 0x01, // QTYPE = A
		0x00, 0x01, // QCLASS = IN
	}
	assert.Equal(t, expected, data)
}

func TestEncodeQuery_AAAA(t *testing.T) {
	codec := testCodec()

	q, err := domain.NewQuestion(1, "example.com", domain.RRTypeAAAA)
	require.NoError(t, err)

	data, err := codec.EncodeQuery(q)
	require.NoError(t, err)
	// QTYPE sits 4 bytes from the end
	assert.Equal(t, uint16(28), binary.BigEndian.Uint16(data[len(data)-4:len(data)-2]))
}

func TestEncodeQuery_InvalidQuestion(t *testing.T) {
	codec := testCodec()
	_, err := codec.EncodeQuery(domain.Question{ID: 1, Name: "", Type: domain.RRTypeA, Class: domain.RRClassIN})
	assert.Error(t, err)
}

func TestIsResponse(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected bool
	}{
		{"QR set", []byte{0, 1, 0x80, 0x00}, true},
		{"QR set with other flags", []byte{0, 1, 0x81, 0x80}, true},
		{"QR unset", []byte{0, 1, 0x00, 0x00}, false},
		{"recursive query is still a query", []byte{0, 1, 0x01, 0x00}, false},
		{"too short", []byte{0, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsResponse(tt.data))
		})
	}
}

// writeHeader appends a 12-byte DNS header to buf.
func writeHeader(buf *bytes.Buffer, id, flags, qd, an, ns, ar uint16) {
	for _, v := range []uint16{id, flags, qd, an, ns, ar} {
		_ = binary.Write(buf, binary.BigEndian, v)
	}
}

// buildDelegationResponse assembles a response with one authority NS record
// for ns1.example. and, when withGlue is set, a matching additional A
// record 10.0.0.1. nsRDLen overrides the stated RDLENGTH of the NS record;
// pass 6 for the true value.
func buildDelegationResponse(id uint16, withGlue bool, nsRDLen uint16) []byte {
	var buf bytes.Buffer
	ar := uint16(0)
	if withGlue {
		ar = 1
	}
	writeHeader(&buf, id, 0x8000, 1, 0, 1, ar)

	// question: example. A IN (name at offset 12)
	buf.Write([]byte{7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 0})
	buf.Write([]byte{0x00, 0x01, 0x00, 0x01})

	// authority: example. NS ns1.example. (owner is a pointer to the qname)
	buf.Write([]byte{0xC0, 0x0C})             // owner -> offset 12
	buf.Write([]byte{0x00, 0x02, 0x00, 0x01}) // TYPE NS, CLASS IN
	buf.Write([]byte{0x00, 0x00, 0x01, 0x2C}) // TTL 300
	_ = binary.Write(&buf, binary.BigEndian, nsRDLen)
	buf.Write([]byte{3, 'n', 's', '1', 0xC0, 0x0C}) // ns1 + pointer to example.

	if withGlue {
		// additional: ns1.example. A 10.0.0.1
		buf.Write([]byte{3, 'n', 's', '1', 0xC0, 0x0C})
		buf.Write([]byte{0x00, 0x01, 0x00, 0x01}) // TYPE A, CLASS IN
		buf.Write([]byte{0x00, 0x00, 0x01, 0x2C}) // TTL 300
		buf.Write([]byte{0x00, 0x04})             // RDLENGTH
		buf.Write([]byte{10, 0, 0, 1})
	}
	return buf.Bytes()
}

// buildAnswerResponse assembles an authoritative response carrying a single
// answer A record for example. = 93.184.216.34.
func buildAnswerResponse(id uint16) []byte {
	var buf bytes.Buffer
	writeHeader(&buf, id, 0x8000, 1, 1, 0, 0)

	buf.Write([]byte{7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 0})
	buf.Write([]byte{0x00, 0x01, 0x00, 0x01})

	buf.Write([]byte{0xC0, 0x0C})
	buf.Write([]byte{0x00, 0x01, 0x00, 0x01})
	buf.Write([]byte{0x00, 0x00, 0x01, 0x2C})
	buf.Write([]byte{0x00, 0x04})
	buf.Write([]byte{93, 184, 216, 34})
	return buf.Bytes()
}

func TestDecodeMessage_Delegation(t *testing.T) {
	codec := testCodec()

	msg, err := codec.DecodeMessage(buildDelegationResponse(42, true, 6), 42)
	require.NoError(t, err)

	assert.Equal(t, uint16(42), msg.Header.ID)
	assert.Equal(t, "example.", msg.QuestionName)
	assert.Empty(t, msg.Answers)
	require.Len(t, msg.Authority, 1)
	require.Len(t, msg.Additional, 1)

	ns := msg.Authority[0]
	assert.Equal(t, "example.", ns.Name)
	assert.Equal(t, domain.RRTypeNS, ns.Type)
	assert.Equal(t, "ns1.example.", ns.Data)

	glue := msg.Additional[0]
	assert.Equal(t, "ns1.example.", glue.Name)
	assert.Equal(t, domain.RRTypeA, glue.Type)
	assert.Equal(t, "10.0.0.1", glue.Data)
}

func TestDecodeMessage_NSIgnoresStatedRDLength(t *testing.T) {
	codec := testCodec()

	// A lying RDLENGTH must not derail the parse: the NS field ends where
	// the decompressed name ends.
	msg, err := codec.DecodeMessage(buildDelegationResponse(42, true, 20), 42)
	require.NoError(t, err)
	require.Len(t, msg.Additional, 1)
	assert.Equal(t, "10.0.0.1", msg.Additional[0].Data)
}

func TestDecodeMessage_Answer(t *testing.T) {
	codec := testCodec()

	msg, err := codec.DecodeMessage(buildAnswerResponse(7), 7)
	require.NoError(t, err)

	require.Len(t, msg.Answers, 1)
	assert.Equal(t, "example.", msg.Answers[0].Name)
	assert.Equal(t, "93.184.216.34", msg.Answers[0].Data)
	assert.Empty(t, msg.Authority)
	assert.Empty(t, msg.Additional)
}

func TestDecodeMessage_Idempotent(t *testing.T) {
	codec := testCodec()
	data := buildDelegationResponse(9, true, 6)

	first, err := codec.DecodeMessage(data, 9)
	require.NoError(t, err)
	second, err := codec.DecodeMessage(data, 9)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecodeMessage_NotAResponse(t *testing.T) {
	codec := testCodec()

	var buf bytes.Buffer
	writeHeader(&buf, 1, 0x0000, 0, 0, 0, 0)

	_, err := codec.DecodeMessage(buf.Bytes(), 1)
	assert.ErrorIs(t, err, ErrNotAResponse)
}

func TestDecodeMessage_IDMismatch(t *testing.T) {
	codec := testCodec()

	_, err := codec.DecodeMessage(buildAnswerResponse(7), 8)
	assert.ErrorIs(t, err, ErrMalformedMessage)
}

func TestDecodeMessage_TruncatedHeader(t *testing.T) {
	codec := testCodec()

	_, err := codec.DecodeMessage([]byte{0x00, 0x01, 0x80}, 1)
	assert.ErrorIs(t, err, ErrMalformedMessage)
}

func TestDecodeMessage_CountOverrunsBuffer(t *testing.T) {
	codec := testCodec()

	// Header claims five answers; none are present.
	var buf bytes.Buffer
	writeHeader(&buf, 3, 0x8000, 1, 5, 0, 0)
	buf.Write([]byte{7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 0})
	buf.Write([]byte{0x00, 0x01, 0x00, 0x01})

	_, err := codec.DecodeMessage(buf.Bytes(), 3)
	assert.ErrorIs(t, err, ErrMalformedMessage)
}

func TestDecodeMessage_ForwardPointerRejected(t *testing.T) {
	codec := testCodec()

	// Question name is a pointer targeting its own offset.
	var buf bytes.Buffer
	writeHeader(&buf, 5, 0x8000, 1, 0, 0, 0)
	buf.Write([]byte{0xC0, 0x0C}) // offset 12 pointing at 12
	buf.Write([]byte{0x00, 0x01, 0x00, 0x01})

	_, err := codec.DecodeMessage(buf.Bytes(), 5)
	assert.ErrorIs(t, err, ErrMalformedMessage)
}
