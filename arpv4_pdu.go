package ethping

import (
	"bytes"
	"encoding/binary"
	"io"
	"net"

	"github.com/mdlayher/ethernet"
)

type ARPOperation uint16

const (
	ARPOperationRequest  ARPOperation = 1
	ARPOperationResponse ARPOperation = 2
	HTYPEEthernet                     = 1

	arpv4PduLength = 28
)

var EmptyHardwareAddr = net.HardwareAddr{
	0x0, 0x0, 0x0,
	0x0, 0x0, 0x0,
}

type ARPv4Pdu struct {
	HTYPE           uint16
	PTYPE           ethernet.EtherType
	HLEN            uint8
	PLEN            uint8
	Operation       ARPOperation
	SrcHardwareAddr net.HardwareAddr
	SrcProtoAddr    net.IP
	DstHardwareAddr net.HardwareAddr
	DstProtoAddr    net.IP
}

func NewARPv4Request(srcHardwareAddr net.HardwareAddr, srcIP, dstIP net.IP) (*ARPv4Pdu, error) {
	if len(srcHardwareAddr) != HardwareAddrLen {
		return nil, ErrNotAnMACHardwareAddress
	}

	if srcIP.To4() == nil || dstIP.To4() == nil {
		return nil, ErrNotAnIPv4Address
	}

	return &ARPv4Pdu{
		HTYPE:           HTYPEEthernet,
		PTYPE:           ethernet.EtherTypeIPv4,
		HLEN:            HardwareAddrLen,
		PLEN:            net.IPv4len,
		Operation:       ARPOperationRequest,
		SrcHardwareAddr: srcHardwareAddr,
		SrcProtoAddr:    srcIP.To4(),
		DstHardwareAddr: EmptyHardwareAddr,
		DstProtoAddr:    dstIP.To4(),
	}, nil
}

func (a *ARPv4Pdu) IsEthernetAndIPv4() bool {
	if a.HTYPE != HTYPEEthernet {
		// not ethernet
		return false
	}

	if a.PTYPE != ethernet.EtherTypeIPv4 {
		// not IPv4
		return false
	}

	if a.HLEN != HardwareAddrLen {
		// MAC's are 6 bytes
		return false
	}

	if a.PLEN != net.IPv4len {
		// IP's are 4 bytes
		return false
	}

	return true
}

func (a *ARPv4Pdu) IsArpResponse() bool {
	return a.Operation == ARPOperationResponse
}

// IsResponseFrom reports whether this is a reply announcing the hardware address of ip.
func (a *ARPv4Pdu) IsResponseFrom(ip net.IP) bool {
	return a.IsArpResponse() && bytes.Equal(a.SrcProtoAddr, ip.To4())
}

func (a *ARPv4Pdu) MarshalBinary() ([]byte, error) {
	b := make([]byte, arpv4PduLength)

	binary.BigEndian.PutUint16(b[0:2], a.HTYPE)
	binary.BigEndian.PutUint16(b[2:4], uint16(a.PTYPE))
	b[4] = a.HLEN
	b[5] = a.PLEN
	binary.BigEndian.PutUint16(b[6:8], uint16(a.Operation))

	copy(b[8:14], a.SrcHardwareAddr)
	copy(b[14:18], a.SrcProtoAddr.To4())
	copy(b[18:24], a.DstHardwareAddr)
	copy(b[24:28], a.DstProtoAddr.To4())

	return b, nil
}

func (a *ARPv4Pdu) UnmarshalBinary(payload []byte) error {
	if len(payload) < arpv4PduLength {
		return io.ErrUnexpectedEOF
	}

	a.HTYPE = binary.BigEndian.Uint16(payload[0:2])
	a.PTYPE = ethernet.EtherType(binary.BigEndian.Uint16(payload[2:4]))
	a.HLEN = payload[4]
	a.PLEN = payload[5]
	a.Operation = ARPOperation(binary.BigEndian.Uint16(payload[6:8]))
	a.SrcHardwareAddr = append(net.HardwareAddr{}, payload[8:14]...)
	a.SrcProtoAddr = append(net.IP{}, payload[14:18]...)
	a.DstHardwareAddr = append(net.HardwareAddr{}, payload[18:24]...)
	a.DstProtoAddr = append(net.IP{}, payload[24:28]...)

	if !a.IsEthernetAndIPv4() {
		return ErrUnsupportedArpProtocol
	}

	return nil
}
