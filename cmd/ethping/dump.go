package main

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/rs/zerolog/log"
)

// dumpFrame logs each decoded layer of frame.
func dumpFrame(frame []byte) {
	packet := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.Default)

	for _, layer := range packet.Layers() {
		log.Info().Msg(gopacket.LayerString(layer))
	}

	if errLayer := packet.ErrorLayer(); errLayer != nil {
		log.Warn().Msgf("failed to decode frame: %v", errLayer.Error())
	}
}
