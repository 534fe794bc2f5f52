package ethping

import (
	"encoding/binary"
	"io"
	"net"
)

const (
	ipv4HeaderLength = 20
	ipv4MaxPayload   = 0xffff - ipv4HeaderLength

	ipv4VersionIHL  = 4<<4 | ipv4HeaderLength/4
	ipv4DefaultTTL  = 64
	IPProtocolICMP4 = 1
)

// IPv4Pdu is an IPv4 packet without options carrying an ICMP message.
type IPv4Pdu struct {
	srcIP    net.IP
	dstIP    net.IP
	ttl      uint8
	protocol uint8
	payload  []byte
}

func NewIPv4Pdu(srcIP, dstIP net.IP, payload []byte) (*IPv4Pdu, error) {
	src := srcIP.To4()
	dst := dstIP.To4()
	if src == nil || dst == nil {
		return nil, ErrNotAnIPv4Address
	}

	if len(payload) > ipv4MaxPayload {
		return nil, ErrPayloadTooLarge
	}

	return &IPv4Pdu{
		srcIP:    append(net.IP{}, src...),
		dstIP:    append(net.IP{}, dst...),
		ttl:      ipv4DefaultTTL,
		protocol: IPProtocolICMP4,
		payload:  append([]byte{}, payload...),
	}, nil
}

func (i *IPv4Pdu) SrcIP() net.IP {
	return append(net.IP{}, i.srcIP...)
}

func (i *IPv4Pdu) DstIP() net.IP {
	return append(net.IP{}, i.dstIP...)
}

func (i *IPv4Pdu) TTL() uint8 {
	return i.ttl
}

func (i *IPv4Pdu) Protocol() uint8 {
	return i.protocol
}

func (i *IPv4Pdu) Payload() []byte {
	return append([]byte{}, i.payload...)
}

func (i *IPv4Pdu) MarshalBinary() ([]byte, error) {
	if len(i.payload) > ipv4MaxPayload {
		return nil, ErrPayloadTooLarge
	}

	length := ipv4HeaderLength + len(i.payload)
	b := make([]byte, length)

	b[0] = ipv4VersionIHL
	// dscp, ecn, identification, flags and fragment offset stay zero
	binary.BigEndian.PutUint16(b[2:4], uint16(length))
	b[8] = ipv4DefaultTTL
	b[9] = IPProtocolICMP4

	copy(b[12:16], i.srcIP)
	copy(b[16:20], i.dstIP)

	// header only, the payload carries its own checksum
	checksum := Checksum(b[:ipv4HeaderLength])
	copy(b[10:12], checksum[:])

	copy(b[ipv4HeaderLength:], i.payload)

	return b, nil
}

func (i *IPv4Pdu) UnmarshalBinary(data []byte) error {
	if len(data) < ipv4HeaderLength {
		return io.ErrUnexpectedEOF
	}

	if data[0] != ipv4VersionIHL {
		return ErrUnsupportedIPv4Header
	}

	totalLength := int(binary.BigEndian.Uint16(data[2:4]))
	if totalLength < ipv4HeaderLength || totalLength > len(data) {
		return io.ErrUnexpectedEOF
	}

	if onesComplementChecksum(data[:ipv4HeaderLength]) != 0 {
		return ErrInvalidChecksum
	}

	i.ttl = data[8]
	i.protocol = data[9]
	i.srcIP = append(net.IP{}, data[12:16]...)
	i.dstIP = append(net.IP{}, data[16:20]...)

	// trailing bytes beyond total length are link layer padding
	i.payload = append([]byte{}, data[ipv4HeaderLength:totalLength]...)

	return nil
}
