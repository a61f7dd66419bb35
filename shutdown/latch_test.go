package shutdown_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shearerbeard/PESA-equation-services/shutdown"
)

func TestLatchFireIsIdempotent(t *testing.T) {
	l := shutdown.New()
	assert.False(t, l.Fired())

	require.NotPanics(t, func() {
		l.Fire()
		l.Fire()
		l.Fire()
	})
	assert.True(t, l.Fired())
}

func TestLatchMultipleWaiters(t *testing.T) {
	l := shutdown.New()

	const waiters = 5
	var wg sync.WaitGroup
	wg.Add(waiters)
	for i := 0; i < waiters; i++ {
		go func() {
			defer wg.Done()
			<-l.Done()
		}()
	}

	l.Fire()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("not all waiters observed the fired latch")
	}
}

func TestLatchDoneBlocksUntilFired(t *testing.T) {
	l := shutdown.New()
	select {
	case <-l.Done():
		t.Fatal("latch reported done before Fire was called")
	default:
	}
}
