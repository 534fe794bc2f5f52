package ethping_test

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/davidkroell/ethping"
	"github.com/davidkroell/ethping/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/mdlayher/ethernet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitter_Emit(t *testing.T) {
	ctx := context.Background()
	req := ethping.DefaultEchoRequest()

	t.Run("OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		discoverer := mocks.NewMockDiscoverer(ctrl)
		sender := mocks.NewMockSender(ctrl)

		egress := testEgress()
		egress.Interface.Index = 5

		wantFrame, err := ethping.BuildEchoFrame(egress, req)
		require.NoError(t, err)

		discoverer.EXPECT().Discover(ctx, req.DstIP).Return(egress, nil)
		sender.EXPECT().Send(wantFrame, gomock.Any()).DoAndReturn(func(frame []byte, dst *ethping.LinkAddr) error {
			assert.Equal(t, 5, dst.InterfaceIndex())
			assert.Equal(t, egress.NextHop.HardwareAddr, dst.HardwareAddr())
			assert.Equal(t, ethernet.EtherTypeIPv4, dst.Protocol())
			return nil
		})

		frame, err := ethping.NewEmitter(discoverer, sender).Emit(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, wantFrame, frame)
		assert.Len(t, frame, 46)
	})

	t.Run("ErrorDiscover", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		discoverer := mocks.NewMockDiscoverer(ctrl)
		sender := mocks.NewMockSender(ctrl)

		discoverer.EXPECT().Discover(ctx, req.DstIP).Return(nil, ethping.ErrNoRoute)

		frame, err := ethping.NewEmitter(discoverer, sender).Emit(ctx, req)
		assert.ErrorIs(t, err, ethping.ErrNoRoute)
		assert.Nil(t, frame)
	})

	t.Run("ErrorPayloadTooLarge", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		discoverer := mocks.NewMockDiscoverer(ctrl)
		sender := mocks.NewMockSender(ctrl)

		largeReq := req
		largeReq.Payload = make([]byte, 70000)

		discoverer.EXPECT().Discover(ctx, req.DstIP).Return(testEgress(), nil)

		frame, err := ethping.NewEmitter(discoverer, sender).Emit(ctx, largeReq)
		assert.ErrorIs(t, err, ethping.ErrPayloadTooLarge)
		assert.Nil(t, frame)
	})

	t.Run("ErrorSend", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		discoverer := mocks.NewMockDiscoverer(ctrl)
		sender := mocks.NewMockSender(ctrl)
		testErr := errors.New("test error")

		discoverer.EXPECT().Discover(ctx, net.IP{1, 1, 1, 1}).Return(testEgress(), nil)
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(testErr).Times(1)

		frame, err := ethping.NewEmitter(discoverer, sender).Emit(ctx, req)
		assert.ErrorIs(t, err, testErr)
		assert.Nil(t, frame)
	})
}
