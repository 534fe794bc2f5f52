package ethping

import (
	"bytes"
	"net"
	"sort"
	"sync"

	"github.com/vishvananda/netlink"
)

type RouteType uint8

const (
	LinkLocalRouteType RouteType = 0
	GatewayRouteType   RouteType = 1
)

func (r RouteType) String() string {
	switch r {
	case LinkLocalRouteType:
		return "lo"
	case GatewayRouteType:
		return "gw"
	default:
		return ""
	}
}

type RouteInfo struct {
	RouteType RouteType
	DstNet    net.IPNet
	NextHop   net.IP
	Src       net.IP
	LinkIndex int
	Priority  int
}

type RouteTable struct {
	configuredRoutes []RouteInfo
	mu               sync.Mutex
}

func NewRouteTable() *RouteTable {
	return &RouteTable{
		configuredRoutes: make([]RouteInfo, 0),
		mu:               sync.Mutex{},
	}
}

// NewRouteTableFromNetlink loads the IPv4 unicast routes of the kernel.
// Routes that cannot be represented are skipped.
func NewRouteTableFromNetlink(routes []netlink.Route) *RouteTable {
	table := NewRouteTable()

	for _, r := range routes {
		ri := RouteInfo{
			RouteType: LinkLocalRouteType,
			DstNet: net.IPNet{
				IP:   net.IP{0, 0, 0, 0},
				Mask: net.CIDRMask(0, 32),
			},
			Src:       r.Src.To4(),
			LinkIndex: r.LinkIndex,
			Priority:  r.Priority,
		}

		if r.Dst != nil {
			ri.DstNet = *r.Dst
		}

		gw := r.Gw
		if len(r.MultiPath) > 0 && r.MultiPath[0] != nil {
			// multipath routes carry gateway and link per path, the first one is used
			gw = r.MultiPath[0].Gw
			if ri.LinkIndex == 0 {
				ri.LinkIndex = r.MultiPath[0].LinkIndex
			}
		}

		if gw != nil {
			ri.RouteType = GatewayRouteType
			ri.NextHop = gw.To4()
		}

		// errors only concern routes we are not interested in
		_ = table.AddRoute(ri)
	}

	return table
}

func (table *RouteTable) AddRoute(config RouteInfo) error {
	dstIP := config.DstNet.IP.To4()
	if dstIP == nil || len(config.DstNet.Mask) != net.IPv4len {
		return ErrNotAnIPv4Address
	}

	if !dstIP.Mask(config.DstNet.Mask).Equal(dstIP) {
		return ErrNotANetworkAddress
	}

	if config.RouteType == LinkLocalRouteType && config.NextHop != nil {
		return ErrLinkLocalRouteShouldNotHaveNextHop
	}

	if config.RouteType == GatewayRouteType && config.NextHop.To4() == nil {
		return ErrNotAnIPv4Address
	}

	if config.LinkIndex <= 0 {
		return ErrInvalidInterfaceIndex
	}

	config.DstNet.IP = dstIP

	table.mu.Lock()
	defer table.mu.Unlock()

	table.configuredRoutes = append(table.configuredRoutes, config)

	// most specific first, lower priority value wins between equal prefixes
	sort.SliceStable(table.configuredRoutes, func(i, j int) bool {
		onesI, _ := table.configuredRoutes[i].DstNet.Mask.Size()
		onesJ, _ := table.configuredRoutes[j].DstNet.Mask.Size()

		if onesI != onesJ {
			return onesI > onesJ
		}
		return table.configuredRoutes[i].Priority < table.configuredRoutes[j].Priority
	})

	return nil
}

func (table *RouteTable) GetRoutes() []RouteInfo {
	table.mu.Lock()
	defer table.mu.Unlock()

	r := make([]RouteInfo, len(table.configuredRoutes))

	copy(r, table.configuredRoutes)
	return r
}

// Lookup returns the most specific route towards dst.
func (table *RouteTable) Lookup(dst net.IP) (*RouteInfo, error) {
	dst4 := dst.To4()
	if dst4 == nil {
		return nil, ErrNotAnIPv4Address
	}

	table.mu.Lock()
	defer table.mu.Unlock()

	for _, ri := range table.configuredRoutes {
		if bytes.Equal(dst4.Mask(ri.DstNet.Mask), ri.DstNet.IP) {
			// dst ip is inside this route's destination network
			return &ri, nil
		}
	}

	return nil, ErrNoRoute
}
