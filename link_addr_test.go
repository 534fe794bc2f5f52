package ethping_test

import (
	"net"
	"testing"

	"github.com/davidkroell/ethping"
	"github.com/mdlayher/ethernet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLinkAddr(t *testing.T) {
	hwAddr := net.HardwareAddr{1, 1, 1, 2, 2, 2}

	tests := map[string]struct {
		ifIndex int
		hwAddr  net.HardwareAddr
		proto   ethernet.EtherType
		wantErr error
	}{
		"OK":             {ifIndex: 3, hwAddr: hwAddr, proto: ethernet.EtherTypeIPv4},
		"ZeroIndex":      {ifIndex: 0, hwAddr: hwAddr, proto: ethernet.EtherTypeIPv4, wantErr: ethping.ErrInvalidInterfaceIndex},
		"NegativeIndex":  {ifIndex: -1, hwAddr: hwAddr, proto: ethernet.EtherTypeIPv4, wantErr: ethping.ErrInvalidInterfaceIndex},
		"NoHardwareAddr": {ifIndex: 3, hwAddr: nil, proto: ethernet.EtherTypeIPv4, wantErr: ethping.ErrNotAnMACHardwareAddress},
		"ZeroProtocol":   {ifIndex: 3, hwAddr: hwAddr, proto: 0, wantErr: ethping.ErrInvalidEtherType},
	}

	for name, v := range tests {
		t.Run(name, func(t *testing.T) {
			addr, err := ethping.NewLinkAddr(v.ifIndex, v.hwAddr, v.proto)
			require.ErrorIs(t, err, v.wantErr)

			if v.wantErr != nil {
				assert.Nil(t, addr)
				return
			}

			assert.Equal(t, v.ifIndex, addr.InterfaceIndex())
			assert.Equal(t, v.hwAddr, addr.HardwareAddr())
			assert.Equal(t, v.proto, addr.Protocol())
			assert.Equal(t, "packet", addr.Network())
			assert.Equal(t, "01:01:01:02:02:02%3 (proto 0x0800)", addr.String())
		})
	}
}

func TestLinkAddr_CopiesHardwareAddr(t *testing.T) {
	hwAddr := net.HardwareAddr{1, 1, 1, 2, 2, 2}

	addr, err := ethping.NewLinkAddr(3, hwAddr, ethernet.EtherTypeIPv4)
	require.NoError(t, err)

	hwAddr[0] = 0xff
	addr.HardwareAddr()[1] = 0xff

	assert.Equal(t, net.HardwareAddr{1, 1, 1, 2, 2, 2}, addr.HardwareAddr())
}
