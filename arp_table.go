package ethping

import (
	"context"
	"encoding/binary"
	"net"
	"sync"
	"time"
)

const (
	arpPollInterval   = 10 * time.Millisecond
	arpPollsPerResend = 10
	arpMaxPolls       = 100
)

type ARPv4Table struct {
	ipv4ToMacMap map[uint32]net.HardwareAddr
	arpWriter    ARPWriter
	mu           sync.Mutex
}

func NewARPv4Table(arpWriter ARPWriter) *ARPv4Table {
	return &ARPv4Table{
		ipv4ToMacMap: make(map[uint32]net.HardwareAddr),
		arpWriter:    arpWriter,
		mu:           sync.Mutex{}}
}

func (a *ARPv4Table) Store(ipAddr net.IP, macAddr net.HardwareAddr) error {
	if len(macAddr) != HardwareAddrLen {
		return ErrNotAnMACHardwareAddress
	}

	if len(ipAddr) != net.IPv4len {
		return ErrNotAnIPv4Address
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	ipv4NumFormat := binary.BigEndian.Uint32(ipAddr)
	a.ipv4ToMacMap[ipv4NumFormat] = append(net.HardwareAddr{}, macAddr...)
	return nil
}

// Resolve returns the hardware address of ipAddr, sending ARP requests
// until a reply has been stored or the table gives up.
func (a *ARPv4Table) Resolve(ctx context.Context, ipAddr net.IP) (net.HardwareAddr, error) {
	if len(ipAddr) != net.IPv4len {
		return nil, ErrNotAnIPv4Address
	}

	ipv4NumFormat := binary.BigEndian.Uint32(ipAddr)

	hwAddr, found := a.resolveFromCache(ipv4NumFormat)
	if found {
		return hwAddr, nil
	}

	for i := 0; i < arpMaxPolls; i++ {
		if i%arpPollsPerResend == 0 {
			err := a.arpWriter.SendArpRequest(ipAddr)
			if err != nil {
				return nil, err
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(arpPollInterval):
		}

		hwAddr, found = a.resolveFromCache(ipv4NumFormat)
		if found {
			return hwAddr, nil
		}
	}
	return nil, ErrARPTimeout
}

func (a *ARPv4Table) resolveFromCache(ipv4NumFormat uint32) (net.HardwareAddr, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if k, ok := a.ipv4ToMacMap[ipv4NumFormat]; ok {
		return k, true
	}
	return nil, false
}
