// Package worker implements the background refresher that keeps stored Steam
// profiles from going stale. Sync work happens off the request path: handlers
// and a periodic scan enqueue Steam IDs, a small worker pool drains them.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Prometheus metrics
var (
	refreshEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cs2_refresh_enqueued_total",
		Help: "Total number of Steam profile refreshes enqueued",
	})

	refreshSynced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cs2_refresh_synced_total",
		Help: "Total number of Steam profile refreshes that succeeded",
	})

	refreshFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cs2_refresh_failed_total",
		Help: "Total number of Steam profile refreshes that failed",
	})

	refreshLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cs2_refresh_load_shed_total",
		Help: "Total number of refreshes dropped because the queue was full",
	})

	refreshQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cs2_refresh_queue_depth",
		Help: "Current depth of the refresh queue",
	})
)

// Syncer refreshes one player's Steam profile and reports success.
type Syncer interface {
	Sync(ctx context.Context, steamID string) bool
}

// StalePlayerLister finds players whose last sync is older than a cutoff.
type StalePlayerLister interface {
	ListStaleSteamIDs(ctx context.Context, olderThan time.Time, limit int) ([]string, error)
}

// RefresherConfig configures the background refresher
type RefresherConfig struct {
	Workers   int
	QueueSize int
	Interval  time.Duration
	Staleness time.Duration
	ScanLimit int
	Sync      Syncer
	Store     StalePlayerLister
	Logger    *zap.Logger
}

// Refresher runs the refresh worker pool and the periodic staleness scan.
type Refresher struct {
	config RefresherConfig
	queue  chan string
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	logger *zap.SugaredLogger
}

func NewRefresher(cfg RefresherConfig) *Refresher {
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.ScanLimit <= 0 {
		cfg.ScanLimit = 100
	}

	return &Refresher{
		config: cfg,
		queue:  make(chan string, cfg.QueueSize),
		logger: cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines and, when an interval is configured,
// the periodic staleness scan.
func (r *Refresher) Start(ctx context.Context) {
	r.ctx, r.cancel = context.WithCancel(ctx)

	for i := 0; i < r.config.Workers; i++ {
		r.wg.Add(1)
		go r.worker(i)
	}

	if r.config.Interval > 0 {
		go r.scanLoop()
	}
	go r.reportQueueDepth()

	r.logger.Infow("Refresher started",
		"workers", r.config.Workers,
		"queueSize", r.config.QueueSize,
		"interval", r.config.Interval,
	)
}

// Stop shuts the refresher down. Queued refreshes are drained before workers
// exit, so a Stop after Enqueue is deterministic.
func (r *Refresher) Stop() {
	r.logger.Info("Stopping refresher...")
	close(r.queue)
	r.wg.Wait()
	r.cancel()
	r.logger.Info("Refresher stopped")
}

// Enqueue schedules a refresh for one Steam ID. A full queue sheds the
// request rather than blocking the caller.
func (r *Refresher) Enqueue(steamID string) bool {
	// Protect against sending on closed channel
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warnw("Failed to enqueue refresh (refresher stopped)", "error", rec)
		}
	}()

	select {
	case r.queue <- steamID:
		refreshEnqueued.Inc()
		return true
	default:
		r.logger.Warnw("Refresh queue full, dropping", "steam_id", steamID)
		refreshLoadShed.Inc()
		return false
	}
}

// QueueDepth returns current queue size
func (r *Refresher) QueueDepth() int {
	return len(r.queue)
}

func (r *Refresher) worker(id int) {
	defer r.wg.Done()

	for steamID := range r.queue {
		if r.config.Sync.Sync(r.ctx, steamID) {
			refreshSynced.Inc()
		} else {
			refreshFailed.Inc()
		}
	}
	r.logger.Infow("Refresh worker drained", "worker", id)
}

// scanLoop periodically enqueues players whose profile is past the staleness
// cutoff, oldest first.
func (r *Refresher) scanLoop() {
	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.scan()
		case <-r.ctx.Done():
			return
		}
	}
}

func (r *Refresher) scan() {
	cutoff := time.Now().Add(-r.config.Staleness)

	ids, err := r.config.Store.ListStaleSteamIDs(r.ctx, cutoff, r.config.ScanLimit)
	if err != nil {
		r.logger.Errorw("Staleness scan failed", "error", err)
		return
	}
	if len(ids) == 0 {
		return
	}

	r.logger.Infow("Staleness scan found players to refresh", "count", len(ids))
	for _, id := range ids {
		r.Enqueue(id)
	}
}

func (r *Refresher) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			refreshQueueDepth.Set(float64(len(r.queue)))
		case <-r.ctx.Done():
			return
		}
	}
}
