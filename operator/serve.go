package operator

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"github.com/Shearerbeard/PESA-equation-services/config"
	"github.com/Shearerbeard/PESA-equation-services/equationpb"
	"github.com/Shearerbeard/PESA-equation-services/expr"
	"github.com/Shearerbeard/PESA-equation-services/peer"
	"github.com/Shearerbeard/PESA-equation-services/shutdown"
)

// Register is implemented by each cmd/<op> binary to wire its one
// owned *Server interface onto the grpc.Server; e.g. for the Adder
// binary it is equationpb.RegisterAdderServer wrapped around
// AdderView.
type Register func(*grpc.Server, *Service)

// Run is the common body behind every cmd/<op>/main.go: resolve this
// binary's own listen address and its three peers' addresses from
// config.Load, start serving the owned RPC, and block until either an
// OS signal or a term RPC fires the shutdown latch, then stop
// gracefully. It mirrors the teacher's cmd/worker.go signal-handling
// shape (signal.Notify + context cancellation + a completion
// handshake), generalized from "cancel a context" to "fire a Latch"
// since the thing being awaited here is gRPC's own GracefulStop rather
// than a pool of goroutines.
func Run(owner expr.Kind, register Register) error {
	addrs, err := config.Load()
	if err != nil {
		return err
	}
	ownAddr, err := addrs.Own(owner)
	if err != nil {
		return err
	}

	latch := shutdown.New()
	peers := peer.NewManager(peer.Addresses(addrs.Peers(owner)))
	defer peers.Close()

	svc := New(owner, peers, latch)
	peers.WarmUp(context.Background())

	lis, err := net.Listen("tcp", ownAddr)
	if err != nil {
		return fmt.Errorf("operator: listen on %s: %w", ownAddr, err)
	}

	grpcServer := grpc.NewServer(grpc.ForceServerCodec(equationpb.Codec), interceptorChain(svc.log))
	register(grpcServer, svc)

	serveErr := make(chan error, 1)
	go func() { serveErr <- grpcServer.Serve(lis) }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		svc.log.Printf("shutting down on signal %v", sig)
		latch.Fire()
	case <-latch.Done():
	case err := <-serveErr:
		return err
	}

	grpcServer.GracefulStop()
	return nil
}
