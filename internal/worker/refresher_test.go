package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

type mockSyncer struct {
	mu     sync.Mutex
	synced []string
	result bool
}

func (m *mockSyncer) Sync(ctx context.Context, steamID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.synced = append(m.synced, steamID)
	return m.result
}

func (m *mockSyncer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.synced)
}

type mockLister struct {
	ListStaleSteamIDsFunc func(ctx context.Context, olderThan time.Time, limit int) ([]string, error)
}

func (m *mockLister) ListStaleSteamIDs(ctx context.Context, olderThan time.Time, limit int) ([]string, error) {
	if m.ListStaleSteamIDsFunc != nil {
		return m.ListStaleSteamIDsFunc(ctx, olderThan, limit)
	}
	return nil, nil
}

func TestRefresherDrainsQueueOnStop(t *testing.T) {
	syncer := &mockSyncer{result: true}
	r := NewRefresher(RefresherConfig{
		Workers:   2,
		QueueSize: 16,
		Sync:      syncer,
		Store:     &mockLister{},
		Logger:    zap.NewNop(),
	})
	r.Start(context.Background())

	for i := 0; i < 10; i++ {
		if !r.Enqueue("76561198000000001") {
			t.Fatalf("Enqueue() = false at %d", i)
		}
	}
	r.Stop()

	if got := syncer.count(); got != 10 {
		t.Errorf("synced %d players, want 10", got)
	}
}

func TestRefresherShedsWhenQueueFull(t *testing.T) {
	// No workers started, so the queue never drains.
	r := NewRefresher(RefresherConfig{
		Workers:   1,
		QueueSize: 2,
		Sync:      &mockSyncer{},
		Store:     &mockLister{},
		Logger:    zap.NewNop(),
	})

	if !r.Enqueue("a") || !r.Enqueue("b") {
		t.Fatal("expected first two enqueues to succeed")
	}
	if r.Enqueue("c") {
		t.Error("Enqueue() = true on full queue, want false")
	}
	if r.QueueDepth() != 2 {
		t.Errorf("QueueDepth() = %d, want 2", r.QueueDepth())
	}
}

func TestRefresherEnqueueAfterStop(t *testing.T) {
	r := NewRefresher(RefresherConfig{
		Workers: 1,
		Sync:    &mockSyncer{result: true},
		Store:   &mockLister{},
		Logger:  zap.NewNop(),
	})
	r.Start(context.Background())
	r.Stop()

	// Must not panic.
	if r.Enqueue("76561198000000001") {
		t.Error("Enqueue() = true after Stop, want false")
	}
}

func TestRefresherScanEnqueuesStalePlayers(t *testing.T) {
	syncer := &mockSyncer{result: true}
	lister := &mockLister{
		ListStaleSteamIDsFunc: func(ctx context.Context, olderThan time.Time, limit int) ([]string, error) {
			return []string{"76561198000000001", "76561198000000002"}, nil
		},
	}
	r := NewRefresher(RefresherConfig{
		Workers:   1,
		Staleness: time.Hour,
		Sync:      syncer,
		Store:     lister,
		Logger:    zap.NewNop(),
	})
	r.Start(context.Background())

	r.scan()
	r.Stop()

	if got := syncer.count(); got != 2 {
		t.Errorf("synced %d players, want 2", got)
	}
}
