package ethping

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
)

func TestRouteTable_AddRoute(t *testing.T) {
	t.Run("DestinationIsNoValidNetwork", func(t *testing.T) {
		rt := NewRouteTable()

		ri1 := RouteInfo{
			RouteType: LinkLocalRouteType,
			DstNet: net.IPNet{
				IP:   net.IP{192, 168, 20, 5},
				Mask: net.CIDRMask(24, 32),
			},
			LinkIndex: 2,
		}
		err := rt.AddRoute(ri1)
		assert.EqualError(t, err, ErrNotANetworkAddress.Error())

		assert.Empty(t, rt.GetRoutes())
	})

	t.Run("ErrLinkLocalRouteShouldNotHaveNextHop", func(t *testing.T) {
		rt := NewRouteTable()

		ri1 := RouteInfo{
			RouteType: LinkLocalRouteType,
			DstNet: net.IPNet{
				IP:   net.IP{192, 168, 0, 0},
				Mask: net.CIDRMask(24, 32),
			},
			NextHop:   net.IP{192, 168, 10, 100},
			LinkIndex: 2,
		}
		err := rt.AddRoute(ri1)
		require.EqualError(t, err, ErrLinkLocalRouteShouldNotHaveNextHop.Error())
	})

	t.Run("GatewayRouteWithoutNextHop", func(t *testing.T) {
		rt := NewRouteTable()

		err := rt.AddRoute(RouteInfo{
			RouteType: GatewayRouteType,
			DstNet: net.IPNet{
				IP:   net.IP{0, 0, 0, 0},
				Mask: net.CIDRMask(0, 32),
			},
			LinkIndex: 2,
		})
		require.EqualError(t, err, ErrNotAnIPv4Address.Error())
	})

	t.Run("IPv6Destination", func(t *testing.T) {
		rt := NewRouteTable()

		err := rt.AddRoute(RouteInfo{
			RouteType: LinkLocalRouteType,
			DstNet: net.IPNet{
				IP:   net.ParseIP("2001:db8::"),
				Mask: net.CIDRMask(64, 128),
			},
			LinkIndex: 2,
		})
		require.EqualError(t, err, ErrNotAnIPv4Address.Error())
	})

	t.Run("MissingLinkIndex", func(t *testing.T) {
		rt := NewRouteTable()

		err := rt.AddRoute(RouteInfo{
			RouteType: LinkLocalRouteType,
			DstNet: net.IPNet{
				IP:   net.IP{192, 168, 0, 0},
				Mask: net.CIDRMask(24, 32),
			},
		})
		require.EqualError(t, err, ErrInvalidInterfaceIndex.Error())
	})

	t.Run("SortedMostSpecificFirst", func(t *testing.T) {
		rt := NewRouteTable()

		defaultRoute := RouteInfo{
			RouteType: GatewayRouteType,
			DstNet:    net.IPNet{IP: net.IP{0, 0, 0, 0}, Mask: net.CIDRMask(0, 32)},
			NextHop:   net.IP{192, 168, 0, 1},
			LinkIndex: 2,
			Priority:  100,
		}
		lanRoute := RouteInfo{
			RouteType: LinkLocalRouteType,
			DstNet:    net.IPNet{IP: net.IP{192, 168, 0, 0}, Mask: net.CIDRMask(24, 32)},
			LinkIndex: 2,
		}
		dockerRoute := RouteInfo{
			RouteType: LinkLocalRouteType,
			DstNet:    net.IPNet{IP: net.IP{172, 17, 0, 0}, Mask: net.CIDRMask(16, 32)},
			LinkIndex: 3,
		}

		require.NoError(t, rt.AddRoute(defaultRoute))
		require.NoError(t, rt.AddRoute(dockerRoute))
		require.NoError(t, rt.AddRoute(lanRoute))

		assert.Equal(t, []RouteInfo{lanRoute, dockerRoute, defaultRoute}, rt.GetRoutes())
	})
}

func TestRouteTable_Lookup(t *testing.T) {
	rt := NewRouteTable()

	routes := []RouteInfo{
		{
			RouteType: GatewayRouteType,
			DstNet:    net.IPNet{IP: net.IP{0, 0, 0, 0}, Mask: net.CIDRMask(0, 32)},
			NextHop:   net.IP{192, 168, 0, 1},
			LinkIndex: 2,
			Priority:  600,
		},
		{
			RouteType: GatewayRouteType,
			DstNet:    net.IPNet{IP: net.IP{0, 0, 0, 0}, Mask: net.CIDRMask(0, 32)},
			NextHop:   net.IP{10, 0, 0, 1},
			LinkIndex: 3,
			Priority:  100,
		},
		{
			RouteType: LinkLocalRouteType,
			DstNet:    net.IPNet{IP: net.IP{192, 168, 0, 0}, Mask: net.CIDRMask(24, 32)},
			LinkIndex: 2,
		},
		{
			RouteType: GatewayRouteType,
			DstNet:    net.IPNet{IP: net.IP{192, 168, 100, 0}, Mask: net.CIDRMask(24, 32)},
			NextHop:   net.IP{192, 168, 0, 254},
			LinkIndex: 2,
		},
	}

	for _, r := range routes {
		require.NoError(t, rt.AddRoute(r))
	}

	tests := map[string]struct {
		dst         net.IP
		wantErr     error
		wantType    RouteType
		wantNextHop net.IP
		wantLink    int
	}{
		"DefaultLowestPriority": {
			dst:         net.IP{1, 1, 1, 1},
			wantType:    GatewayRouteType,
			wantNextHop: net.IP{10, 0, 0, 1},
			wantLink:    3,
		},
		"LinkLocal": {
			dst:      net.IP{192, 168, 0, 50},
			wantType: LinkLocalRouteType,
			wantLink: 2,
		},
		"StaticRoute": {
			dst:         net.ParseIP("192.168.100.7"),
			wantType:    GatewayRouteType,
			wantNextHop: net.IP{192, 168, 0, 254},
			wantLink:    2,
		},
		"IPv6": {
			dst:     net.ParseIP("2001:db8::1"),
			wantErr: ErrNotAnIPv4Address,
		},
	}

	for name, v := range tests {
		t.Run(name, func(t *testing.T) {
			ri, err := rt.Lookup(v.dst)
			require.ErrorIs(t, err, v.wantErr)

			if v.wantErr != nil {
				return
			}

			assert.Equal(t, v.wantType, ri.RouteType)
			assert.Equal(t, v.wantNextHop, ri.NextHop)
			assert.Equal(t, v.wantLink, ri.LinkIndex)
		})
	}

	t.Run("NoRoute", func(t *testing.T) {
		_, err := NewRouteTable().Lookup(net.IP{1, 1, 1, 1})
		assert.ErrorIs(t, err, ErrNoRoute)
	})
}

func TestNewRouteTableFromNetlink(t *testing.T) {
	_, lan, err := net.ParseCIDR("192.168.0.0/24")
	require.NoError(t, err)

	_, v6, err := net.ParseCIDR("2001:db8::/64")
	require.NoError(t, err)

	rt := NewRouteTableFromNetlink([]netlink.Route{
		// default route as older kernels/netlink versions report it
		{LinkIndex: 2, Gw: net.ParseIP("192.168.0.1"), Priority: 600},
		// default route with explicit destination
		{LinkIndex: 3, Dst: &net.IPNet{IP: net.IPv4zero, Mask: net.CIDRMask(0, 32)}, Gw: net.IP{10, 0, 0, 1}, Priority: 100},
		{LinkIndex: 2, Dst: lan, Src: net.ParseIP("192.168.0.80")},
		{LinkIndex: 2, Dst: v6},
	})

	routes := rt.GetRoutes()
	require.Len(t, routes, 3)

	assert.Equal(t, LinkLocalRouteType, routes[0].RouteType)
	assert.Equal(t, net.IP{192, 168, 0, 80}, routes[0].Src)

	ri, err := rt.Lookup(net.IP{1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, GatewayRouteType, ri.RouteType)
	assert.Equal(t, net.IP{10, 0, 0, 1}, ri.NextHop)
	assert.Equal(t, 3, ri.LinkIndex)
}

func TestNewRouteTableFromNetlink_MultiPath(t *testing.T) {
	rt := NewRouteTableFromNetlink([]netlink.Route{
		{
			Dst: &net.IPNet{IP: net.IPv4zero, Mask: net.CIDRMask(0, 32)},
			MultiPath: []*netlink.NexthopInfo{
				{LinkIndex: 4, Gw: net.IP{172, 16, 0, 1}},
				{LinkIndex: 5, Gw: net.IP{172, 16, 1, 1}},
			},
		},
	})

	ri, err := rt.Lookup(net.IP{1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, GatewayRouteType, ri.RouteType)
	assert.Equal(t, net.IP{172, 16, 0, 1}, ri.NextHop)
	assert.Equal(t, 4, ri.LinkIndex)
}
