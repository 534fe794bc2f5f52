package ethping

import (
	"context"
	"net"

	"github.com/mdlayher/ethernet"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -destination ./internal/mocks/mock_hardware_addr_resolver.go -package mocks github.com/davidkroell/ethping HardwareAddrResolver

// HardwareAddrResolver resolves the hardware address of a neighbour on the link of iface.
type HardwareAddrResolver interface {
	ResolveHardwareAddr(ctx context.Context, iface *InterfaceConfig, ip net.IP) (net.HardwareAddr, error)
}

// ARPResolver resolves neighbours the kernel has no entry for by asking on the wire.
type ARPResolver struct {
	opener SocketOpener
}

func NewARPResolver(opener SocketOpener) *ARPResolver {
	return &ARPResolver{opener: opener}
}

func (r *ARPResolver) ResolveHardwareAddr(ctx context.Context, iface *InterfaceConfig, ip net.IP) (net.HardwareAddr, error) {
	ip4 := ip.To4()
	if ip4 == nil {
		return nil, ErrNotAnIPv4Address
	}

	conn, err := r.opener.Open(iface.Index, ethernet.EtherTypeARP)
	if err != nil {
		return nil, err
	}

	arpWriter := NewARPv4Writer(iface)
	arpWriter.Initialize(conn)
	table := NewARPv4Table(arpWriter)

	done := make(chan struct{})
	go func() {
		defer close(done)
		readARPReplies(conn, iface.MTU, ip4, table)
	}()

	hwAddr, err := table.Resolve(ctx, ip4)

	// unblocks the reader
	if cerr := conn.Close(); cerr != nil {
		log.Warn().Msgf("failed to close ARP socket: %v", cerr)
	}
	<-done

	if err != nil {
		return nil, err
	}

	log.Debug().Msgf("%s is-at %s", ip4, hwAddr)
	return hwAddr, nil
}

// readARPReplies stores replies announcing target until conn fails or is closed.
func readARPReplies(conn net.PacketConn, mtu int, target net.IP, table *ARPv4Table) {
	if mtu <= 0 {
		mtu = 1500
	}

	// Accept frames up to interface's MTU in size
	b := make([]byte, mtu+ethernetHeaderLength)
	var f ethernet.Frame

	for {
		n, _, err := conn.ReadFrom(b)
		if err != nil {
			return
		}

		// Unpack Ethernet frame into Go representation.
		if err := (&f).UnmarshalBinary(b[:n]); err != nil {
			log.Debug().Msgf("failed to unmarshal ethernet frame: %v", err)
			continue
		}

		if f.EtherType != ethernet.EtherTypeARP {
			continue
		}

		var packet ARPv4Pdu
		if err := (&packet).UnmarshalBinary(f.Payload); err != nil {
			log.Debug().Msgf("error during arp unmarshall: %v", err)
			continue
		}

		if !packet.IsResponseFrom(target) {
			continue
		}

		if err := table.Store(packet.SrcProtoAddr, packet.SrcHardwareAddr); err != nil {
			log.Debug().Msgf("error during arp table store: %v", err)
		}
	}
}
