package orchestrator_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/Shearerbeard/PESA-equation-services/config"
	"github.com/Shearerbeard/PESA-equation-services/equationpb"
	"github.com/Shearerbeard/PESA-equation-services/expr"
	"github.com/Shearerbeard/PESA-equation-services/operator"
	"github.com/Shearerbeard/PESA-equation-services/orchestrator"
	"github.com/Shearerbeard/PESA-equation-services/peer"
	"github.com/Shearerbeard/PESA-equation-services/shutdown"
)

// startFleet runs all four operators on real local listeners and
// returns the config.Addresses an orchestrator would read from the
// environment, plus a teardown func.
func startFleet(t *testing.T) (config.Addresses, func()) {
	t.Helper()

	kinds := []expr.Kind{expr.Add, expr.Sub, expr.Mul, expr.Div}
	listeners := make(map[expr.Kind]net.Listener, 4)
	addrs := make(peer.Addresses, 4)
	for _, kind := range kinds {
		lis, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		listeners[kind] = lis
		addrs[kind] = lis.Addr().String()
	}

	registerFor := map[expr.Kind]func(*grpc.Server, *operator.Service){
		expr.Add: func(s *grpc.Server, svc *operator.Service) {
			equationpb.RegisterAdderServer(s, operator.AdderView{Service: svc})
		},
		expr.Sub: func(s *grpc.Server, svc *operator.Service) {
			equationpb.RegisterSubtractorServer(s, operator.SubtractorView{Service: svc})
		},
		expr.Mul: func(s *grpc.Server, svc *operator.Service) {
			equationpb.RegisterMultiplierServer(s, operator.MultiplierView{Service: svc})
		},
		expr.Div: func(s *grpc.Server, svc *operator.Service) {
			equationpb.RegisterDividerServer(s, operator.DividerView{Service: svc})
		},
	}

	servers := make([]*grpc.Server, 0, 4)
	for _, kind := range kinds {
		peers := peer.NewManager(addrs)
		svc := operator.New(kind, peers, shutdown.New())

		srv := grpc.NewServer(grpc.ForceServerCodec(equationpb.Codec))
		registerFor[kind](srv, svc)
		go func(lis net.Listener) { _ = srv.Serve(lis) }(listeners[kind])
		servers = append(servers, srv)
	}

	teardown := func() {
		for _, srv := range servers {
			srv.Stop()
		}
	}
	return config.Addresses(addrs), teardown
}

func TestOrchestratorDispatchesNestedExpression(t *testing.T) {
	addrs, teardown := startFleet(t)
	defer teardown()

	o := orchestrator.New(addrs)
	defer o.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := o.Dispatch(ctx, orchestrator.Fixtures["nested"])
	require.NoError(t, err)
	require.Equal(t, int32(30), result)
}

func TestOrchestratorDispatchesBareLiteralWithoutRPC(t *testing.T) {
	o := orchestrator.New(config.Addresses{}) // no peers configured at all
	defer o.Close()

	result, err := o.Dispatch(context.Background(), orchestrator.Fixtures["literal"])
	require.NoError(t, err)
	require.Equal(t, int32(42), result)
}

func TestOrchestratorSmokeTestReportsAllFourOperators(t *testing.T) {
	addrs, teardown := startFleet(t)
	defer teardown()

	o := orchestrator.New(addrs)
	defer o.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	results := o.SmokeTest(ctx)
	require.Len(t, results, 4)
	for kind, err := range results {
		require.NoError(t, err, "smoke test failed for %s", kind)
	}
}

func TestOrchestratorShutdownAgainstLiveFleetDoesNotPanic(t *testing.T) {
	addrs, teardown := startFleet(t)
	defer teardown()

	o := orchestrator.New(addrs)
	defer o.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NotPanics(t, func() { o.Shutdown(ctx) })
}

func TestOrchestratorWarmUpSucceedsWhenAllFourReachable(t *testing.T) {
	addrs, teardown := startFleet(t)
	defer teardown()

	o := orchestrator.New(addrs)
	defer o.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, o.WarmUp(ctx))
}

// TestOrchestratorWarmUpFailsFatallyWhenAPeerIsUnreachable covers
// spec.md §4.3 point 2 and §6: unlike operator.Service's lazy, boot-
// tolerant connect, the orchestrator has no owned operation to fall
// back on, so a peer that never comes up must surface as a hard error
// from WarmUp rather than a logged, ignorable warning.
func TestOrchestratorWarmUpFailsFatallyWhenAPeerIsUnreachable(t *testing.T) {
	addrs, teardown := startFleet(t)
	defer teardown()

	// Reserve a real address, then close it immediately so nothing is
	// listening there: the Divider's peer slot now points at a
	// guaranteed-closed port for the life of the test.
	dead, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	deadAddr := dead.Addr().String()
	require.NoError(t, dead.Close())
	addrs[expr.Div] = deadAddr

	o := orchestrator.New(addrs)
	defer o.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = o.WarmUp(ctx)
	require.Error(t, err)
}
