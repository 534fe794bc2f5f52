package ethping

import (
	"fmt"
	"net"
)

const (
	DefaultIdentifier uint16 = 69
	DefaultSequence   uint16 = 420
)

// EchoRequest holds the fields of the single echo request that gets sent.
type EchoRequest struct {
	Identifier uint16
	Sequence   uint16
	Payload    []byte
	DstIP      net.IP
}

func DefaultEchoRequest() EchoRequest {
	return EchoRequest{
		Identifier: DefaultIdentifier,
		Sequence:   DefaultSequence,
		Payload:    []byte{1, 2, 3, 4},
		DstIP:      net.IP{1, 1, 1, 1},
	}
}

// BuildEchoFrame encodes req as ICMP in IPv4 in Ethernet, addressed from the
// egress interface to its next hop.
func BuildEchoFrame(egress *Egress, req EchoRequest) ([]byte, error) {
	icmpBinary, err := NewICMPv4EchoRequest(req.Identifier, req.Sequence, req.Payload).MarshalBinary()
	if err != nil {
		return nil, err
	}

	ipv4Packet, err := NewIPv4Pdu(egress.Interface.Addr.IP, req.DstIP, icmpBinary)
	if err != nil {
		return nil, fmt.Errorf("ipv4: %w", err)
	}

	ipv4Binary, err := ipv4Packet.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("ipv4: %w", err)
	}

	frame, err := NewEthernetFrame(egress.NextHop.HardwareAddr, egress.Interface.HardwareAddr, ipv4Binary)
	if err != nil {
		return nil, fmt.Errorf("ethernet: %w", err)
	}

	return frame.MarshalBinary()
}
