package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBaseWorker(t *testing.T) {
	t.Run(`run check`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var calls int32
		done := make(chan struct{})
		go func() {
			defer close(done)
			NewInstance("test", time.Millisecond, time.Millisecond).Run(ctx, func(ctx context.Context) {
				if atomic.AddInt32(&calls, 1) == 1 {
					panic("first run fails")
				}
			})
		}()
		require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 3 }, time.Second, time.Millisecond)
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("worker did not stop")
		}
	})
}
