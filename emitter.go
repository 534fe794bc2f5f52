package ethping

import (
	"context"

	"github.com/mdlayher/ethernet"
)

// Emitter sends a single echo request frame. It never retries and never
// waits for a reply.
type Emitter struct {
	discoverer Discoverer
	sender     Sender
}

func NewEmitter(discoverer Discoverer, sender Sender) *Emitter {
	return &Emitter{discoverer: discoverer, sender: sender}
}

// Emit returns the frame that was sent.
func (e *Emitter) Emit(ctx context.Context, req EchoRequest) ([]byte, error) {
	egress, err := e.discoverer.Discover(ctx, req.DstIP)
	if err != nil {
		return nil, err
	}

	frame, err := BuildEchoFrame(egress, req)
	if err != nil {
		return nil, err
	}

	dst, err := NewLinkAddr(egress.Interface.Index, egress.NextHop.HardwareAddr, ethernet.EtherTypeIPv4)
	if err != nil {
		return nil, err
	}

	if err := e.sender.Send(frame, dst); err != nil {
		return nil, err
	}

	return frame, nil
}
