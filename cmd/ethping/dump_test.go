package main

import (
	"bytes"
	"net"
	"testing"

	"github.com/davidkroell/ethping"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer

	logger := log.Logger
	level := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	})

	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	return &buf
}

func TestDumpFrame(t *testing.T) {
	ifconfig, err := ethping.NewInterfaceConfig(netlinkAttrs(), &net.IPNet{IP: net.IP{10, 0, 0, 5}, Mask: net.CIDRMask(24, 32)})
	require.NoError(t, err)

	frame, err := ethping.BuildEchoFrame(&ethping.Egress{
		Interface: ifconfig,
		NextHop:   ethping.NextHop{IP: net.IP{10, 0, 0, 1}, HardwareAddr: testGatewayHwAddr},
	}, ethping.DefaultEchoRequest())
	require.NoError(t, err)

	t.Run("OK", func(t *testing.T) {
		buf := captureLog(t)

		dumpFrame(frame)

		out := buf.String()
		assert.Contains(t, out, "Ethernet")
		assert.Contains(t, out, "IPv4")
		assert.Contains(t, out, "ICMPv4")
		assert.NotContains(t, out, "failed to decode frame")
	})

	t.Run("Truncated", func(t *testing.T) {
		buf := captureLog(t)

		dumpFrame(frame[:24])

		out := buf.String()
		assert.Contains(t, out, "Ethernet")
		assert.Contains(t, out, "failed to decode frame")
	})
}
