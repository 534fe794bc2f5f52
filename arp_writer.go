package ethping

import (
	"net"

	"github.com/mdlayher/ethernet"
	"github.com/mdlayher/raw"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -destination ./internal/mocks/mock_arp_writer.go -package mocks github.com/davidkroell/ethping ARPWriter

type ARPWriter interface {
	SendArpRequest(ip net.IP) error
}

type ARPv4Writer struct {
	ifconfig *InterfaceConfig
	c        net.PacketConn
}

func NewARPv4Writer(ifconfig *InterfaceConfig) *ARPv4Writer {
	return &ARPv4Writer{ifconfig: ifconfig}
}

func (a *ARPv4Writer) Initialize(c net.PacketConn) {
	a.c = c
}

func (a *ARPv4Writer) SendArpRequest(ip net.IP) error {
	if a.c == nil {
		return ErrARPPacketConn
	}

	req, err := NewARPv4Request(a.ifconfig.HardwareAddr, a.ifconfig.Addr.IP, ip)
	if err != nil {
		return err
	}

	bin, err := req.MarshalBinary()
	if err != nil {
		return err
	}

	// ethernet.Frame pads to the minimum frame size, which is what ARP wants
	frame := ethernet.Frame{
		Destination: ethernet.Broadcast,
		Source:      req.SrcHardwareAddr,
		EtherType:   ethernet.EtherTypeARP,
		Payload:     bin,
	}

	frameBinary, err := frame.MarshalBinary()
	if err != nil {
		return err
	}

	log.Debug().Msgf("who-has %s tell %s", ip, a.ifconfig.Addr.IP)

	_, err = a.c.WriteTo(frameBinary, &raw.Addr{HardwareAddr: ethernet.Broadcast})
	return err
}
