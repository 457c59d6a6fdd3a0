package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSimulatorApproves(t *testing.T) {
	s := &Simulator{Delay: time.Millisecond}
	require.NoError(t, s.Authorize(context.Background(), 104))
}

func TestSimulatorHonorsCancellation(t *testing.T) {
	s := &Simulator{Delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Authorize(ctx, 104)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSimulatorZeroDelay(t *testing.T) {
	s := &Simulator{}
	require.NoError(t, s.Authorize(context.Background(), 104))
}
