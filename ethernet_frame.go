package ethping

import (
	"encoding/binary"
	"net"

	"github.com/mdlayher/ethernet"
)

const (
	HardwareAddrLen      = 6
	ethernetHeaderLength = 14
)

// EthernetFrame is an untagged Ethernet II frame carrying an IPv4 packet.
//
// ethernet.Frame pads its payload to the 46 byte minimum on marshalling,
// this one writes the payload as is and leaves padding and FCS to the driver.
type EthernetFrame struct {
	dst     net.HardwareAddr
	src     net.HardwareAddr
	payload []byte
}

func NewEthernetFrame(dst, src net.HardwareAddr, payload []byte) (*EthernetFrame, error) {
	if len(dst) != HardwareAddrLen || len(src) != HardwareAddrLen {
		return nil, ErrNotAnMACHardwareAddress
	}

	return &EthernetFrame{
		dst:     append(net.HardwareAddr{}, dst...),
		src:     append(net.HardwareAddr{}, src...),
		payload: append([]byte{}, payload...),
	}, nil
}

func (f *EthernetFrame) Destination() net.HardwareAddr {
	return append(net.HardwareAddr{}, f.dst...)
}

func (f *EthernetFrame) Source() net.HardwareAddr {
	return append(net.HardwareAddr{}, f.src...)
}

func (f *EthernetFrame) EtherType() ethernet.EtherType {
	return ethernet.EtherTypeIPv4
}

func (f *EthernetFrame) MarshalBinary() ([]byte, error) {
	b := make([]byte, ethernetHeaderLength+len(f.payload))

	copy(b[0:6], f.dst)
	copy(b[6:12], f.src)
	binary.BigEndian.PutUint16(b[12:14], uint16(ethernet.EtherTypeIPv4))
	copy(b[ethernetHeaderLength:], f.payload)

	return b, nil
}
