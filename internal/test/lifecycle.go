package test

import (
	"sync/atomic"

	"go.uber.org/fx"
)

// LifecycleRecorder collects fx hooks instead of running them, letting tests
// drive OnStart/OnStop by hand.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores the hook for manual invocation.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub counts Shutdown calls and signals the Called channel without
// blocking the caller.
type ShutdownerStub struct {
	Called chan struct{}
	count  atomic.Int64
}

// Shutdown records the invocation.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	s.count.Add(1)
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}

// Count reports how many times Shutdown ran.
func (s *ShutdownerStub) Count() int64 { return s.count.Load() }
