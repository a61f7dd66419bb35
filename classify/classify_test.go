package classify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Shearerbeard/PESA-equation-services/classify"
	"github.com/Shearerbeard/PESA-equation-services/expr"
)

func TestToStatusMapsInvalidArgument(t *testing.T) {
	err := classify.New(classify.InvalidArgument, errors.New("bad json"))
	st := classify.ToStatus(err)
	s, ok := status.FromError(st)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, s.Code())
}

func TestToStatusMapsOthersToInternal(t *testing.T) {
	for _, kind := range []classify.Kind{classify.PeerUnavailable, classify.PeerError, classify.EncodingError, classify.DivisionByZero} {
		err := classify.New(kind, errors.New("cause"))
		st := classify.ToStatus(err)
		s, ok := status.FromError(st)
		require.True(t, ok)
		assert.Equal(t, codes.Internal, s.Code())
	}
}

func TestFromStatusRoundTrips(t *testing.T) {
	orig := classify.New(classify.DivisionByZero, errors.New("divide by zero"))
	wire := classify.ToStatus(orig)

	recovered := classify.FromStatus(wire)
	require.NotNil(t, recovered)
	assert.Equal(t, classify.DivisionByZero, recovered.Kind)
}

func TestOfRecognizesBareDivisionByZeroSentinel(t *testing.T) {
	kind, ok := classify.Of(expr.ErrDivisionByZero)
	require.True(t, ok)
	assert.Equal(t, classify.DivisionByZero, kind)
}

func TestFromStatusFallsBackToPeerError(t *testing.T) {
	recovered := classify.FromStatus(errors.New("some transport failure"))
	require.NotNil(t, recovered)
	assert.Equal(t, classify.PeerError, recovered.Kind)
}
