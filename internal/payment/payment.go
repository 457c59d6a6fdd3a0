package payment

import (
	"context"
	"time"
)

// Authorizer is the opaque payment collaborator: authorization either
// succeeds or fails after some delay.
type Authorizer interface {
	Authorize(ctx context.Context, amount float64) error
}

const defaultDelay = 2 * time.Second

// Simulator approves every payment after a fixed processing delay.
type Simulator struct {
	Delay time.Duration
}

func NewSimulator() *Simulator {
	return &Simulator{Delay: defaultDelay}
}

func (s *Simulator) Authorize(ctx context.Context, amount float64) error {
	delay := s.Delay
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
