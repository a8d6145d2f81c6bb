/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: collector.go
Description: Concurrent corpus collection. Runs a worker pool over the
configured sources, feeds fetched documents into the store with
deduplication, and reports per-run statistics.
*/

package corpus

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// CollectStats summarizes one collection run.
type CollectStats struct {
	Sources    int           `json:"sources"`
	Documents  int64         `json:"documents"`
	Added      int64         `json:"added"`
	Duplicates int64         `json:"duplicates"`
	Failures   int64         `json:"failures"`
	Elapsed    time.Duration `json:"elapsed"`
}

// Collector drives sources concurrently and fills a store.
type Collector struct {
	store   *Store
	logger  *logrus.Logger
	workers int

	documents  int64
	added      int64
	duplicates int64
	failures   int64
}

// NewCollector creates a collector over the store. workers bounds how many
// sources fetch at once; values below 1 run single-worker.
func NewCollector(store *Store, logger *logrus.Logger, workers int) *Collector {
	if workers < 1 {
		workers = 1
	}
	return &Collector{
		store:   store,
		logger:  logger,
		workers: workers,
	}
}

// Collect fetches every source and stores the results. Failing sources are
// logged and counted, not fatal: a half-reachable corpus run still collects
// what it can. Cancellation stops workers between sources.
func (c *Collector) Collect(ctx context.Context, sources []Source) *CollectStats {
	start := time.Now()

	atomic.StoreInt64(&c.documents, 0)
	atomic.StoreInt64(&c.added, 0)
	atomic.StoreInt64(&c.duplicates, 0)
	atomic.StoreInt64(&c.failures, 0)

	queue := make(chan Source)
	var wg sync.WaitGroup

	// Start all workers
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			c.runWorker(ctx, id, queue)
		}(i)
	}

	// Feed sources until done or cancelled
	for _, source := range sources {
		select {
		case <-ctx.Done():
			c.logger.Warn("Collection cancelled, draining workers")
			goto done
		case queue <- source:
		}
	}

done:
	close(queue)
	wg.Wait()

	stats := &CollectStats{
		Sources:    len(sources),
		Documents:  atomic.LoadInt64(&c.documents),
		Added:      atomic.LoadInt64(&c.added),
		Duplicates: atomic.LoadInt64(&c.duplicates),
		Failures:   atomic.LoadInt64(&c.failures),
		Elapsed:    time.Since(start),
	}

	c.logger.WithFields(logrus.Fields{
		"sources":    stats.Sources,
		"documents":  stats.Documents,
		"added":      stats.Added,
		"duplicates": stats.Duplicates,
		"failures":   stats.Failures,
		"elapsed":    stats.Elapsed,
	}).Info("Collection run complete")

	return stats
}

// runWorker is the main worker loop
// Fetches sources from the queue until it closes or the context ends
func (c *Collector) runWorker(ctx context.Context, id int, queue <-chan Source) {
	for source := range queue {
		select {
		case <-ctx.Done():
			return
		default:
		}

		documents, err := source.Fetch(ctx)
		if err != nil {
			atomic.AddInt64(&c.failures, 1)
			c.logger.Errorf("Worker %d failed to fetch source %q: %v", id, source.Name(), err)
			continue
		}

		for _, doc := range documents {
			atomic.AddInt64(&c.documents, 1)
			if c.store.Add(doc) {
				atomic.AddInt64(&c.added, 1)
			} else {
				atomic.AddInt64(&c.duplicates, 1)
			}
		}

		c.logger.WithFields(logrus.Fields{
			"worker":    id,
			"source":    source.Name(),
			"documents": len(documents),
		}).Debug("Source fetched")
	}
}
