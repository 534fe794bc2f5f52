package ethping

import (
	"net"

	"github.com/vishvananda/netlink"
)

// InterfaceConfig describes the outgoing interface as discovered from the kernel.
type InterfaceConfig struct {
	InterfaceName string
	Index         int
	MTU           int
	HardwareAddr  net.HardwareAddr
	Addr          *net.IPNet
}

func NewInterfaceConfig(attrs netlink.LinkAttrs, addr *net.IPNet) (*InterfaceConfig, error) {
	if attrs.Index <= 0 {
		return nil, ErrInvalidInterfaceIndex
	}

	if len(attrs.HardwareAddr) != HardwareAddrLen {
		return nil, ErrNotAnMACHardwareAddress
	}

	if addr == nil || addr.IP.To4() == nil {
		return nil, ErrNotAnIPv4Address
	}

	return &InterfaceConfig{
		InterfaceName: attrs.Name,
		Index:         attrs.Index,
		MTU:           attrs.MTU,
		HardwareAddr:  append(net.HardwareAddr{}, attrs.HardwareAddr...),
		Addr: &net.IPNet{
			IP:   append(net.IP{}, addr.IP.To4()...),
			Mask: addr.Mask,
		},
	}, nil
}

// NextHop is the neighbour a frame is addressed to on the outgoing link.
// For on-link destinations it is the destination itself.
type NextHop struct {
	IP           net.IP
	HardwareAddr net.HardwareAddr
	OnLink       bool
}

// Egress is everything needed to address a frame towards a destination.
type Egress struct {
	Interface *InterfaceConfig
	NextHop   NextHop
}
