// Package peer implements the lazily-connected, cached channels an
// operator service uses to delegate to the three peer operations it
// does not own. It resolves the cold-start dependency cycle described
// in spec.md §4.2: every operator depends on every other operator, and
// all four start at roughly the same time, so no service can require
// its peers to already be listening.
package peer

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/Shearerbeard/PESA-equation-services/classify"
	"github.com/Shearerbeard/PESA-equation-services/equationpb"
	"github.com/Shearerbeard/PESA-equation-services/expr"
)

// Addresses maps each peer Kind to its dial address. A Manager dials
// every kind listed here, lazily or via WarmUp/ProbeAll/Term; an
// operator builds its Manager from config.Addresses.Peers, so its own
// kind is absent, while the orchestrator's Manager holds all four.
type Addresses map[expr.Kind]string

// slot is a single mutable single-holder cell: either empty (nil conn)
// or holding an established, reusable connection to one peer.
type slot struct {
	mu   sync.Mutex
	conn *grpc.ClientConn
}

// Manager is a per-service cache of peer connections, one slot per
// non-owned operation kind.
type Manager struct {
	addrs Addresses
	slots map[expr.Kind]*slot
}

// NewManager returns a Manager ready to lazily connect to the peers
// named in addrs. It does not dial anything yet.
func NewManager(addrs Addresses) *Manager {
	m := &Manager{addrs: addrs, slots: make(map[expr.Kind]*slot, len(addrs))}
	for kind := range addrs {
		m.slots[kind] = &slot{}
	}
	return m
}

// WarmUp attempts to eagerly open every slot's connection. It is
// best-effort: per spec.md §4.2, failures at boot are silently
// tolerated and retried lazily on first use. WarmUp never returns an
// error for that reason; callers that want to log failures should
// inspect the returned map of kind to error.
func (m *Manager) WarmUp(ctx context.Context) map[expr.Kind]error {
	errs := make(map[expr.Kind]error)
	for kind := range m.addrs {
		if _, err := m.connect(kind); err != nil {
			errs[kind] = err
		}
	}
	return errs
}

// ProbeAll actively waits for every configured peer's connection to
// reach connectivity.Ready, or for ctx to expire, and reports a
// per-kind error for every peer that never became ready. Unlike
// WarmUp/connect, which construct a lazy *grpc.ClientConn and tolerate
// an unreachable peer until first real use, ProbeAll gives the caller
// grpc.WithBlock-equivalent boot semantics without relying on that
// deprecated DialOption: Orchestrator.WarmUp uses this to make "all
// four operators reachable at boot" a hard precondition (spec.md
// §4.3 point 2), while operator.Service's own peer delegation keeps
// using the lazy, cold-start-tolerant connect/Call path.
func (m *Manager) ProbeAll(ctx context.Context) map[expr.Kind]error {
	errs := make(map[expr.Kind]error)
	for kind := range m.addrs {
		conn, err := m.connect(kind)
		if err != nil {
			errs[kind] = err
			continue
		}
		conn.Connect()
		for {
			state := conn.GetState()
			if state == connectivity.Ready {
				break
			}
			if state == connectivity.Shutdown {
				errs[kind] = classify.New(classify.PeerUnavailable, fmt.Errorf("connection to %s was shut down", kind))
				break
			}
			if !conn.WaitForStateChange(ctx, state) {
				errs[kind] = classify.New(classify.PeerUnavailable, fmt.Errorf("timed out waiting to connect to %s: %w", kind, ctx.Err()))
				break
			}
		}
	}
	return errs
}

// connect returns the slot's cached connection, dialing lazily on an
// empty slot. The slot's lock is held only across the dial attempt (or
// the read of an already-populated slot); it is released before any
// RPC is made over the returned connection, so the connection itself
// must be (and grpc.ClientConn is) safe for concurrent use.
func (m *Manager) connect(kind expr.Kind) (*grpc.ClientConn, error) {
	s, ok := m.slots[kind]
	if !ok {
		return nil, fmt.Errorf("peer: no address configured for %s", kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		return s.conn, nil
	}

	addr := m.addrs[kind]
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(equationpb.Codec)),
	)
	if err != nil {
		return nil, classify.New(classify.PeerUnavailable, fmt.Errorf("dial %s (%s): %w", kind, addr, err))
	}
	s.conn = conn
	return conn, nil
}

// reset clears a slot so the next call redials instead of reusing a
// connection that has proven dead. This implements the slot-reset
// policy the design notes add on top of spec.md's state machine, for
// peers that vanish after a successful connect (e.g. process restart
// under a fresh listener) rather than merely suffering a transient
// drop that gRPC's own ClientConn already reconnects through.
func (m *Manager) reset(kind expr.Kind) {
	s, ok := m.slots[kind]
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
}

// Call delegates the two-integer primitive for kind to its peer. It is
// the narrower form CallExpr below reduces to when both arguments are
// already Value(_) literals — which is exactly the case whenever
// operator.Service delegates a single arithmetic step, since by the
// time Evaluate reaches a primitive call both children have already
// been reduced.
func (m *Manager) Call(ctx context.Context, kind expr.Kind, first, second int32) (int32, error) {
	return m.CallExpr(ctx, kind, expr.NewValue(first), expr.NewValue(second))
}

// CallExpr delegates a root node's two sub-expressions to kind's
// owner, encoding each arbitrarily-shaped sub-expression onto the wire
// exactly as spec.md §6 describes rather than assuming they are
// already Value literals. Orchestrator.Dispatch uses this directly for
// a root whose children may themselves be unreduced sub-expressions.
func (m *Manager) CallExpr(ctx context.Context, kind expr.Kind, first, second *expr.Expr) (int32, error) {
	firstEnc, err := expr.Encode(first)
	if err != nil {
		return 0, classify.New(classify.EncodingError, err)
	}
	secondEnc, err := expr.Encode(second)
	if err != nil {
		return 0, classify.New(classify.EncodingError, err)
	}
	req := &equationpb.CalculationRequest{FirstArg: firstEnc, SecondArg: secondEnc}

	conn, err := m.connect(kind)
	if err != nil {
		return 0, err
	}

	resp, err := invoke(ctx, kind, conn, req)
	if err != nil {
		if status.Code(err) == codes.Unavailable {
			m.reset(kind)
		}
		if ce := classify.FromStatus(err); ce != nil {
			return 0, ce
		}
		return 0, classify.New(classify.PeerError, err)
	}
	return resp.Result, nil
}

func invoke(ctx context.Context, kind expr.Kind, conn *grpc.ClientConn, req *equationpb.CalculationRequest) (*equationpb.CalculationResponse, error) {
	switch kind {
	case expr.Add:
		return equationpb.NewAdderClient(conn).Add(ctx, req)
	case expr.Sub:
		return equationpb.NewSubtractorClient(conn).Subtract(ctx, req)
	case expr.Mul:
		return equationpb.NewMultiplierClient(conn).Multiply(ctx, req)
	case expr.Div:
		return equationpb.NewDividerClient(conn).Divide(ctx, req)
	default:
		return nil, fmt.Errorf("peer: %s is not a delegatable kind", kind)
	}
}

// Term sends the term RPC to every configured peer. Sends are
// best-effort and non-blocking from the caller's perspective: term is
// idempotent on the receiving side, so failures (including a peer that
// was never reachable) are collected but do not prevent sending to the
// remaining peers.
func (m *Manager) Term(ctx context.Context) map[expr.Kind]error {
	errs := make(map[expr.Kind]error)
	for kind := range m.addrs {
		conn, err := m.connect(kind)
		if err != nil {
			errs[kind] = err
			continue
		}
		if err := termOne(ctx, kind, conn); err != nil {
			errs[kind] = err
		}
	}
	return errs
}

func termOne(ctx context.Context, kind expr.Kind, conn *grpc.ClientConn) error {
	var err error
	switch kind {
	case expr.Add:
		_, err = equationpb.NewAdderClient(conn).Term(ctx, &equationpb.Empty{})
	case expr.Sub:
		_, err = equationpb.NewSubtractorClient(conn).Term(ctx, &equationpb.Empty{})
	case expr.Mul:
		_, err = equationpb.NewMultiplierClient(conn).Term(ctx, &equationpb.Empty{})
	case expr.Div:
		_, err = equationpb.NewDividerClient(conn).Term(ctx, &equationpb.Empty{})
	default:
		return fmt.Errorf("peer: %s is not a delegatable kind", kind)
	}
	return err
}

// Close closes every populated slot's connection. Call once, at
// process exit.
func (m *Manager) Close() {
	for kind := range m.slots {
		m.reset(kind)
	}
}
