package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/zenkeeper/internal/client/client"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/cache/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPeriodicSync_TicksUntilCanceled(t *testing.T) {
	fc := &fakeClient{}
	svc := newService(t, fc, memory.New())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunPeriodicSync(ctx, svc, 5*time.Millisecond, svc.(*syncService).log)
		close(done)
	}()

	require.Eventually(t, func() bool { return fc.calls() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after cancel")
	}
}

func TestRunPeriodicSync_LogsFailures(t *testing.T) {
	fc := &fakeClient{err: client.ErrUnavailable}
	log, buf := newTestLogger()
	svc := NewSyncService(fc, memory.New(), log, clock)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	RunPeriodicSync(ctx, svc, 5*time.Millisecond, log)

	assert.GreaterOrEqual(t, fc.calls(), 1)
	assert.Contains(t, buf.String(), "background sync failed")
}

func TestRunPeriodicSync_DisabledInterval(t *testing.T) {
	fc := &fakeClient{}
	svc := newService(t, fc, memory.New())

	RunPeriodicSync(context.Background(), svc, 0, svc.(*syncService).log)
	assert.Equal(t, 0, fc.calls())
}
