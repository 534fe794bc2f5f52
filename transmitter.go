package ethping

import (
	"errors"
	"fmt"
	"net"

	"github.com/mdlayher/ethernet"
	"github.com/mdlayher/raw"
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
)

//go:generate mockgen -destination ./internal/mocks/mock_socket_opener.go -package mocks github.com/davidkroell/ethping SocketOpener
//go:generate mockgen -destination ./internal/mocks/mock_packet_conn.go -package mocks net PacketConn

// SocketOpener opens a link-layer socket bound to an interface and protocol.
type SocketOpener interface {
	Open(ifIndex int, proto ethernet.EtherType) (net.PacketConn, error)
}

// RawSocketOpener opens AF_PACKET sockets which carry whole Ethernet frames.
type RawSocketOpener struct{}

func (RawSocketOpener) Open(ifIndex int, proto ethernet.EtherType) (net.PacketConn, error) {
	ifi, err := net.InterfaceByIndex(ifIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to open interface %d: %w", ifIndex, err)
	}

	conn, err := raw.ListenPacket(ifi, uint16(proto), nil)
	if err != nil {
		if errors.Is(err, unix.EPERM) || errors.Is(err, unix.EACCES) {
			return nil, fmt.Errorf("%w: %v", ErrSocketPermission, err)
		}
		return nil, fmt.Errorf("failed to listen on %s: %w", ifi.Name, err)
	}

	return conn, nil
}

//go:generate mockgen -destination ./internal/mocks/mock_sender.go -package mocks github.com/davidkroell/ethping Sender

type Sender interface {
	Send(frame []byte, dst *LinkAddr) error
}

// Transmitter writes exactly one frame per Send on a socket it opens for
// that frame only.
type Transmitter struct {
	opener SocketOpener
}

func NewTransmitter(opener SocketOpener) *Transmitter {
	return &Transmitter{opener: opener}
}

func (t *Transmitter) Send(frame []byte, dst *LinkAddr) (err error) {
	conn, err := t.opener.Open(dst.InterfaceIndex(), dst.Protocol())
	if err != nil {
		return err
	}

	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Warn().Msgf("failed to close raw socket: %v", cerr)
		}
	}()

	n, err := conn.WriteTo(frame, &raw.Addr{HardwareAddr: dst.HardwareAddr()})
	if err != nil {
		return fmt.Errorf("failed to write ethernet frame to %s: %w", dst, err)
	}

	if n != len(frame) {
		return fmt.Errorf("%w: %d of %d bytes", ErrShortWrite, n, len(frame))
	}

	log.Debug().Msgf("sent %d bytes to %s", n, dst)
	return nil
}
