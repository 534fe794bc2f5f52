package ethping

import (
	"encoding/binary"
	"io"
)

const (
	icmpv4HeaderLength = 8

	icmpTypeEchoRequest = 8
	icmpCodeEchoRequest = 0
)

// ICMPv4EchoRequest is an ICMP echo request message. It is not modified
// after construction.
type ICMPv4EchoRequest struct {
	identifier uint16
	sequence   uint16
	payload    []byte
}

func NewICMPv4EchoRequest(identifier, sequence uint16, payload []byte) *ICMPv4EchoRequest {
	return &ICMPv4EchoRequest{
		identifier: identifier,
		sequence:   sequence,
		payload:    append([]byte{}, payload...),
	}
}

func (icmp *ICMPv4EchoRequest) Identifier() uint16 {
	return icmp.identifier
}

func (icmp *ICMPv4EchoRequest) Sequence() uint16 {
	return icmp.sequence
}

func (icmp *ICMPv4EchoRequest) Payload() []byte {
	return append([]byte{}, icmp.payload...)
}

// MarshalBinary never returns an error.
func (icmp *ICMPv4EchoRequest) MarshalBinary() ([]byte, error) {
	b := make([]byte, icmpv4HeaderLength+len(icmp.payload))

	b[0] = icmpTypeEchoRequest
	b[1] = icmpCodeEchoRequest
	binary.BigEndian.PutUint16(b[4:6], icmp.identifier)
	binary.BigEndian.PutUint16(b[6:8], icmp.sequence)

	copy(b[icmpv4HeaderLength:], icmp.payload)

	// checksum field is still zero here
	checksum := Checksum(b)
	copy(b[2:4], checksum[:])

	return b, nil
}

func (icmp *ICMPv4EchoRequest) UnmarshalBinary(data []byte) error {
	if len(data) < icmpv4HeaderLength {
		return io.ErrUnexpectedEOF
	}

	if data[0] != icmpTypeEchoRequest || data[1] != icmpCodeEchoRequest {
		return ErrNotAnEchoRequest
	}

	// a correct checksum sums up to zero including the checksum field itself
	if onesComplementChecksum(data) != 0 {
		return ErrInvalidChecksum
	}

	icmp.identifier = binary.BigEndian.Uint16(data[4:6])
	icmp.sequence = binary.BigEndian.Uint16(data[6:8])
	icmp.payload = append([]byte{}, data[icmpv4HeaderLength:]...)

	return nil
}
