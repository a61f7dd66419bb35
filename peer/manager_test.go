package peer_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/Shearerbeard/PESA-equation-services/classify"
	"github.com/Shearerbeard/PESA-equation-services/equationpb"
	"github.com/Shearerbeard/PESA-equation-services/expr"
	"github.com/Shearerbeard/PESA-equation-services/peer"
)

// stubAdder is a minimal AdderServer used to exercise Manager without
// pulling in the operator package.
type stubAdder struct{}

func (stubAdder) Add(_ context.Context, req *equationpb.CalculationRequest) (*equationpb.CalculationResponse, error) {
	left, err := expr.Decode(req.FirstArg)
	if err != nil {
		return nil, err
	}
	right, err := expr.Decode(req.SecondArg)
	if err != nil {
		return nil, err
	}
	return &equationpb.CalculationResponse{Result: left.Val + right.Val}, nil
}

func (stubAdder) Term(context.Context, *equationpb.Empty) (*equationpb.Empty, error) {
	return &equationpb.Empty{}, nil
}

func startStubAdder(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer(grpc.ForceServerCodec(equationpb.Codec))
	equationpb.RegisterAdderServer(srv, stubAdder{})
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	return lis.Addr().String()
}

func TestManagerCallSucceedsAfterLazyConnect(t *testing.T) {
	addr := startStubAdder(t)
	m := peer.NewManager(peer.Addresses{expr.Add: addr})
	defer m.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	result, err := m.Call(ctx, expr.Add, 2, 3)
	require.NoError(t, err)
	require.Equal(t, int32(5), result)
}

func TestManagerCallClassifiesUnreachablePeer(t *testing.T) {
	// No listener bound at this address; grpc.NewClient itself succeeds
	// lazily, so the failure surfaces on the RPC attempt rather than at
	// connect time — either way it must classify as PeerUnavailable or
	// PeerError, never panic or hang past the deadline.
	m := peer.NewManager(peer.Addresses{expr.Add: "127.0.0.1:1"})
	defer m.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := m.Call(ctx, expr.Add, 1, 1)
	require.Error(t, err)
	kind, ok := classify.Of(err)
	require.True(t, ok)
	require.Contains(t, []classify.Kind{classify.PeerUnavailable, classify.PeerError}, kind)
}

func TestManagerCallUnknownKindFails(t *testing.T) {
	m := peer.NewManager(peer.Addresses{})
	defer m.Close()

	_, err := m.Call(context.Background(), expr.Add, 1, 1)
	require.Error(t, err)
}

func TestManagerTermOnUnreachablePeerIsReported(t *testing.T) {
	m := peer.NewManager(peer.Addresses{expr.Add: "127.0.0.1:1"})
	defer m.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	errs := m.Term(ctx)
	require.Len(t, errs, 1)
	require.Error(t, errs[expr.Add])
}
