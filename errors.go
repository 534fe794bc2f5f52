package ethping

import "errors"

var (
	ErrNotAnMACHardwareAddress = errors.New("provided hardware address was no MAC address")
	ErrNotAnIPv4Address        = errors.New("ip address is not an IPv4 address")

	ErrPayloadTooLarge       = errors.New("payload too large. IPv4 total length would exceed 65535 bytes")
	ErrInvalidChecksum       = errors.New("invalid checksum")
	ErrNotAnEchoRequest      = errors.New("icmp message is not an echo request")
	ErrUnsupportedIPv4Header = errors.New("unsupported IPv4 header. requires version 4 without options")

	ErrInvalidInterfaceIndex = errors.New("interface index must be positive")
	ErrInvalidEtherType      = errors.New("ether type must not be zero")

	ErrNotANetworkAddress                 = errors.New("not a correct network address")
	ErrLinkLocalRouteShouldNotHaveNextHop = errors.New("a link-local route should not have a next hop address defined")
	ErrNoRoute                            = errors.New("no route to destination found")
	ErrNoIPv4Address                      = errors.New("outbound interface has no IPv4 address")
	ErrNoNextHopHardwareAddr              = errors.New("no hardware address for next hop found")

	ErrUnsupportedArpProtocol = errors.New("unsupported ARP Version. requires ethernet+IPv4")
	ErrARPTimeout             = errors.New("ARP timeout. no MAC found for this IP Address")
	ErrARPPacketConn          = errors.New("outbound PacketConn was nil")

	ErrSocketPermission = errors.New("not permitted to open a raw socket. run as root or grant CAP_NET_RAW")
	ErrShortWrite       = errors.New("frame was not written completely")
)
