package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/davidkroell/ethping"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/vishvananda/netlink"
)

var ErrInvalidDestination = errors.New("ethping: destination is not an IPv4 address")

type rootFlags struct {
	dst      string
	id       uint16
	seq      uint16
	payload  string
	logLevel string
	dump     bool
}

func (f *rootFlags) echoRequest() (ethping.EchoRequest, error) {
	req := ethping.DefaultEchoRequest()
	req.Identifier = f.id
	req.Sequence = f.seq

	dst := net.ParseIP(f.dst).To4()
	if dst == nil {
		return req, fmt.Errorf("%w: %q", ErrInvalidDestination, f.dst)
	}
	req.DstIP = dst

	payload, err := hex.DecodeString(f.payload)
	if err != nil {
		return req, fmt.Errorf("ethping: invalid payload: %w", err)
	}
	req.Payload = payload

	return req, nil
}

func rootCommand() *cobra.Command {
	def := ethping.DefaultEchoRequest()
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:               "ethping",
		Short:             "send a single ICMP echo request as a raw Ethernet frame",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(flags.logLevel)
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(level)
			log.Debug().Msgf("log level set to %s", level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.echoRequest()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			frame, err := emit(ctx, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Sending %v\n", frame)

			if flags.dump {
				dumpFrame(frame)
			}
			return nil
		},
	}

	rootCmd.Flags().StringVar(&flags.dst, "dst", def.DstIP.String(), "destination IPv4 address")
	rootCmd.Flags().Uint16Var(&flags.id, "id", def.Identifier, "ICMP identifier")
	rootCmd.Flags().Uint16Var(&flags.seq, "seq", def.Sequence, "ICMP sequence number")
	rootCmd.Flags().StringVar(&flags.payload, "payload", hex.EncodeToString(def.Payload), "ICMP payload, hex encoded")
	rootCmd.Flags().BoolVar(&flags.dump, "dump", false, "log a decoded view of the sent frame")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", zerolog.LevelInfoValue, "log level")

	rootCmd.AddCommand(versionCommand())

	return rootCmd
}

func emit(ctx context.Context, req ethping.EchoRequest) ([]byte, error) {
	handle, err := netlink.NewHandle()
	if err != nil {
		return nil, fmt.Errorf("failed to create netlink handle: %w", err)
	}
	defer handle.Close()

	return newEmitter(handle, ethping.RawSocketOpener{}).Emit(ctx, req)
}

// newEmitter wires discovery, ARP fallback and transmission onto one
// netlink handle and one socket opener.
func newEmitter(nl ethping.NetlinkHandle, opener ethping.SocketOpener) *ethping.Emitter {
	return ethping.NewEmitter(
		ethping.NewNetlinkDiscoverer(nl, ethping.NewARPResolver(opener)),
		ethping.NewTransmitter(opener),
	)
}
