package ethping

import (
	"context"
	"fmt"
	"net"

	"github.com/rs/zerolog/log"
	"github.com/vishvananda/netlink"
)

//go:generate mockgen -destination ./internal/mocks/mock_netlink_handle.go -package mocks github.com/davidkroell/ethping NetlinkHandle
//go:generate mockgen -destination ./internal/mocks/mock_discoverer.go -package mocks github.com/davidkroell/ethping Discoverer

// NetlinkHandle is the part of *netlink.Handle used for discovery.
type NetlinkHandle interface {
	RouteList(link netlink.Link, family int) ([]netlink.Route, error)
	LinkByIndex(index int) (netlink.Link, error)
	AddrList(link netlink.Link, family int) ([]netlink.Addr, error)
	NeighList(linkIndex, family int) ([]netlink.Neigh, error)
}

var _ NetlinkHandle = (*netlink.Handle)(nil)

type Discoverer interface {
	Discover(ctx context.Context, dst net.IP) (*Egress, error)
}

// NetlinkDiscoverer finds the outgoing interface and next hop for a
// destination from the kernel's routing and neighbour tables.
type NetlinkDiscoverer struct {
	nl       NetlinkHandle
	resolver HardwareAddrResolver
}

// NewNetlinkDiscoverer creates a discoverer. resolver may be nil, in which
// case next hops missing from the neighbour table are an error.
func NewNetlinkDiscoverer(nl NetlinkHandle, resolver HardwareAddrResolver) *NetlinkDiscoverer {
	return &NetlinkDiscoverer{nl: nl, resolver: resolver}
}

func (d *NetlinkDiscoverer) Discover(ctx context.Context, dst net.IP) (*Egress, error) {
	dst4 := dst.To4()
	if dst4 == nil {
		return nil, ErrNotAnIPv4Address
	}

	routes, err := d.nl.RouteList(nil, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}

	route, err := NewRouteTableFromNetlink(routes).Lookup(dst4)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dst4, err)
	}

	link, err := d.nl.LinkByIndex(route.LinkIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to get link by index %d: %w", route.LinkIndex, err)
	}

	addr, err := d.interfaceAddr(link, route.Src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", link.Attrs().Name, err)
	}

	ifconfig, err := NewInterfaceConfig(*link.Attrs(), addr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", link.Attrs().Name, err)
	}

	nextHop := NextHop{IP: dst4, OnLink: true}
	if route.RouteType == GatewayRouteType {
		nextHop = NextHop{IP: route.NextHop, OnLink: false}
	}

	nextHop.HardwareAddr, err = d.nextHopHardwareAddr(ctx, ifconfig, nextHop.IP)
	if err != nil {
		return nil, fmt.Errorf("next hop %s: %w", nextHop.IP, err)
	}

	log.Debug().
		Str("interface", ifconfig.InterfaceName).
		Int("index", ifconfig.Index).
		Str("hwaddr", ifconfig.HardwareAddr.String()).
		Str("addr", ifconfig.Addr.String()).
		Str("nexthop", nextHop.IP.String()).
		Str("nexthop_hwaddr", nextHop.HardwareAddr.String()).
		Msg("discovered egress")

	return &Egress{Interface: ifconfig, NextHop: nextHop}, nil
}

// interfaceAddr prefers the route's source address and falls back to the
// first IPv4 address of link.
func (d *NetlinkDiscoverer) interfaceAddr(link netlink.Link, src net.IP) (*net.IPNet, error) {
	addrs, err := d.nl.AddrList(link, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	var first *net.IPNet
	for _, a := range addrs {
		if a.IPNet == nil || a.IP.To4() == nil {
			continue
		}

		if first == nil {
			first = a.IPNet
		}

		if src != nil && a.IP.Equal(src) {
			return a.IPNet, nil
		}
	}

	if first == nil {
		return nil, ErrNoIPv4Address
	}
	return first, nil
}

func (d *NetlinkDiscoverer) nextHopHardwareAddr(ctx context.Context, ifconfig *InterfaceConfig, ip net.IP) (net.HardwareAddr, error) {
	neighs, err := d.nl.NeighList(ifconfig.Index, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list neighbours: %w", err)
	}

	for _, n := range neighs {
		if !n.IP.Equal(ip) || !usableNeighState(n.State) {
			continue
		}

		if len(n.HardwareAddr) == HardwareAddrLen {
			return n.HardwareAddr, nil
		}
	}

	if d.resolver == nil {
		return nil, ErrNoNextHopHardwareAddr
	}

	log.Debug().Msgf("%s not in neighbour table of %s, resolving", ip, ifconfig.InterfaceName)
	return d.resolver.ResolveHardwareAddr(ctx, ifconfig, ip)
}

func usableNeighState(state int) bool {
	switch state {
	case netlink.NUD_REACHABLE, netlink.NUD_STALE, netlink.NUD_DELAY,
		netlink.NUD_PROBE, netlink.NUD_PERMANENT, netlink.NUD_NOARP:
		return true
	default:
		return false
	}
}
