package ethping

import (
	"fmt"
	"net"

	"github.com/mdlayher/ethernet"
)

// LinkAddr is the destination of a frame written to a link-layer socket:
// the outgoing interface, the next hop hardware address and the protocol.
type LinkAddr struct {
	ifIndex      int
	hardwareAddr net.HardwareAddr
	protocol     ethernet.EtherType
}

var _ net.Addr = (*LinkAddr)(nil)

func NewLinkAddr(ifIndex int, hardwareAddr net.HardwareAddr, protocol ethernet.EtherType) (*LinkAddr, error) {
	if ifIndex <= 0 {
		return nil, ErrInvalidInterfaceIndex
	}

	if len(hardwareAddr) != HardwareAddrLen {
		return nil, ErrNotAnMACHardwareAddress
	}

	if protocol == 0 {
		return nil, ErrInvalidEtherType
	}

	return &LinkAddr{
		ifIndex:      ifIndex,
		hardwareAddr: append(net.HardwareAddr{}, hardwareAddr...),
		protocol:     protocol,
	}, nil
}

func (a *LinkAddr) InterfaceIndex() int {
	return a.ifIndex
}

func (a *LinkAddr) HardwareAddr() net.HardwareAddr {
	return append(net.HardwareAddr{}, a.hardwareAddr...)
}

func (a *LinkAddr) Protocol() ethernet.EtherType {
	return a.protocol
}

func (a *LinkAddr) Network() string {
	return "packet"
}

func (a *LinkAddr) String() string {
	return fmt.Sprintf("%s%%%d (proto %#04x)", a.hardwareAddr, a.ifIndex, uint16(a.protocol))
}
